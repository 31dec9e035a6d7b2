// Package yake implements unsupervised statistical keyword extraction from
// a single document.
//
// The pipeline scores every 1..n-gram candidate using only properties
// observable within the input text: term position, frequency, casing,
// local co-occurrence context and dispersion across sentences. It needs no
// training data and no corpus statistics: construction runs the whole
// pipeline once, synchronously, and the resulting Extractor is an
// immutable view of the scores.
//
// Extraction is deterministic: identical inputs produce bit-identical
// scores and identical rankings across runs.
package yake

import (
	"strings"

	"github.com/cognicore/salience/pkg/salience/textproc"
)

// KeywordScore pairs a ranked keyword with its relevance score.
type KeywordScore struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}

// Extractor holds the scored candidates of one document.
type Extractor struct {
	scores map[string]float64
	ranked []KeywordScore
}

// New extracts keywords from text. Stopwords are matched against the
// lowercased normal forms of the words. Empty text yields an extractor
// with no candidates, never an error; a malformed Config is rejected.
func New(text string, stopwords []string, cfg Config) (*Extractor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	punctuation := cfg.Punctuation
	if punctuation == nil {
		punctuation = textproc.DefaultPunctuation
	}
	punct := textproc.SymbolSet(punctuation)

	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}

	sentences := textproc.SplitSentences(text)
	doc := buildDocument(sentences, cfg.NGram, cfg.WindowSize, stops, punct)
	weights := extractFeatures(doc)
	survivors := dedupCandidates(doc, cfg.Threshold)
	scores, ranked := scoreCandidates(doc, survivors, weights)

	return &Extractor{scores: scores, ranked: ranked}, nil
}

// Score returns the relevance score of keyword, 0.0 when absent.
func (e *Extractor) Score(keyword string) float64 {
	return e.scores[keyword]
}

// RankedKeywords returns up to n keywords ordered by relevance descending,
// ties broken lexicographically. n larger than the candidate count returns
// all candidates.
func (e *Extractor) RankedKeywords(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(e.ranked) {
		n = len(e.ranked)
	}
	keywords := make([]string, n)
	for i := 0; i < n; i++ {
		keywords[i] = e.ranked[i].Keyword
	}
	return keywords
}

// RankedKeywordScores returns up to n (keyword, score) pairs ordered by
// relevance descending.
func (e *Extractor) RankedKeywordScores(n int) []KeywordScore {
	if n <= 0 {
		return nil
	}
	if n > len(e.ranked) {
		n = len(e.ranked)
	}
	out := make([]KeywordScore, n)
	copy(out, e.ranked[:n])
	return out
}

// Scores returns a copy of the full keyword score map.
func (e *Extractor) Scores() map[string]float64 {
	out := make(map[string]float64, len(e.scores))
	for k, v := range e.scores {
		out[k] = v
	}
	return out
}
