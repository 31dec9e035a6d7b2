// Package rake implements frequency/degree keyword extraction: sentences
// are broken into stopword-delimited phrases, each word is scored by the
// ratio of its co-occurrence degree to its frequency, and each phrase by
// the mean score of its words. Like the other extractors it is a one-shot
// transform of a single document with no corpus statistics.
package rake

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/salience/pkg/salience/internalerr"
	"github.com/cognicore/salience/pkg/salience/textproc"
)

// Config holds the extraction parameters.
type Config struct {
	// PhraseLength caps the number of words per phrase; 0 means
	// unbounded phrases, split only on stopwords and sentence ends.
	PhraseLength int

	// Punctuation is the set of punctuation symbols. Nil selects
	// textproc.DefaultPunctuation.
	Punctuation []string
}

// DefaultConfig returns a config with unbounded phrases and the default
// punctuation set.
func DefaultConfig() Config {
	return Config{}
}

// KeywordScore pairs a ranked word or phrase with its score.
type KeywordScore struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}

// Extractor holds the word and phrase scores of one document.
type Extractor struct {
	wordScores    map[string]float64
	phraseScores  map[string]float64
	rankedWords   []KeywordScore
	rankedPhrases []KeywordScore
}

// New extracts keywords from text. Empty text yields an extractor with no
// phrases, never an error.
func New(text string, stopwords []string, cfg Config) (*Extractor, error) {
	if cfg.PhraseLength < 0 {
		return nil, fmt.Errorf("%w: phrase length must not be negative, got %d", internalerr.ErrInvalidConfig, cfg.PhraseLength)
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

	phrases := textproc.SplitPhrases(textproc.SplitSentences(text), stops, punct, cfg.PhraseLength)
	wordScores, wordOrder := scoreWords(phrases)
	phraseScores, phraseOrder := scorePhrases(phrases, wordScores)

	return &Extractor{
		wordScores:    wordScores,
		phraseScores:  phraseScores,
		rankedWords:   rank(wordScores, wordOrder),
		rankedPhrases: rank(phraseScores, phraseOrder),
	}, nil
}

// scoreWords computes degree/frequency per word. A word's degree grows by
// len(phrase)-1 for every phrase occurrence, so words that appear inside
// long phrases outrank isolated ones of equal frequency.
func scoreWords(phrases [][]string) (map[string]float64, []string) {
	frequency := make(map[string]float64)
	degree := make(map[string]float64)
	var order []string

	for _, phrase := range phrases {
		for _, word := range phrase {
			if _, seen := frequency[word]; !seen {
				order = append(order, word)
			}
			frequency[word]++
			degree[word] += float64(len(phrase) - 1)
		}
	}

	scores := make(map[string]float64, len(frequency))
	for _, word := range order {
		scores[word] = degree[word] / frequency[word]
	}
	return scores, order
}

func scorePhrases(phrases [][]string, wordScores map[string]float64) (map[string]float64, []string) {
	scores := make(map[string]float64, len(phrases))
	var order []string

	for _, phrase := range phrases {
		key := strings.Join(phrase, " ")
		if _, seen := scores[key]; seen {
			continue
		}
		sum := 0.0
		for _, word := range phrase {
			sum += wordScores[word]
		}
		scores[key] = sum / float64(len(phrase))
		order = append(order, key)
	}
	return scores, order
}

func rank(scores map[string]float64, order []string) []KeywordScore {
	ranked := make([]KeywordScore, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, KeywordScore{Keyword: key, Score: scores[key]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})
	return ranked
}

// WordScore returns the score of a single word, 0.0 when absent.
func (e *Extractor) WordScore(word string) float64 {
	return e.wordScores[word]
}

// PhraseScore returns the score of a phrase, 0.0 when absent.
func (e *Extractor) PhraseScore(phrase string) float64 {
	return e.phraseScores[phrase]
}

// RankedWords returns up to n words ordered by score descending, ties
// broken lexicographically.
func (e *Extractor) RankedWords(n int) []string {
	return topKeywords(e.rankedWords, n)
}

// RankedPhrases returns up to n phrases ordered by score descending.
func (e *Extractor) RankedPhrases(n int) []string {
	return topKeywords(e.rankedPhrases, n)
}

// RankedWordScores returns up to n (word, score) pairs.
func (e *Extractor) RankedWordScores(n int) []KeywordScore {
	return topScores(e.rankedWords, n)
}

// RankedPhraseScores returns up to n (phrase, score) pairs.
func (e *Extractor) RankedPhraseScores(n int) []KeywordScore {
	return topScores(e.rankedPhrases, n)
}

// WordScores returns a copy of the full word score map.
func (e *Extractor) WordScores() map[string]float64 {
	return copyScores(e.wordScores)
}

// PhraseScores returns a copy of the full phrase score map.
func (e *Extractor) PhraseScores() map[string]float64 {
	return copyScores(e.phraseScores)
}

func topKeywords(ranked []KeywordScore, n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[i].Keyword
	}
	return out
}

func topScores(ranked []KeywordScore, n int) []KeywordScore {
	if n <= 0 {
		return nil
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]KeywordScore, n)
	copy(out, ranked[:n])
	return out
}

func copyScores(scores map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for k, v := range scores {
		out[k] = v
	}
	return out
}
