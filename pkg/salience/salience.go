// Package salience extracts the most relevant keywords and key phrases
// from a single document using unsupervised statistical methods.
package salience

import (
	"fmt"

	"github.com/cognicore/salience/pkg/salience/internalerr"
	"github.com/cognicore/salience/pkg/salience/rake"
	"github.com/cognicore/salience/pkg/salience/stoplist"
	"github.com/cognicore/salience/pkg/salience/textrank"
	"github.com/cognicore/salience/pkg/salience/yake"
)

// Algorithm selects the extraction method.
type Algorithm string

const (
	AlgorithmYAKE     Algorithm = "yake"
	AlgorithmRAKE     Algorithm = "rake"
	AlgorithmTextRank Algorithm = "textrank"
)

// Keyword pairs an extracted term or phrase with its relevance score.
// Higher scores mean more relevant, regardless of algorithm.
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Options configures an extraction. Zero values select the defaults:
// YAKE with the built-in English stoplist and the top 10 keywords.
type Options struct {
	Algorithm Algorithm

	// Stopwords replaces the built-in English stoplist when non-nil.
	Stopwords []string

	// TopN bounds the number of returned keywords. Values below 1
	// select 10.
	TopN int

	YAKE     yake.Config
	RAKE     rake.Config
	TextRank textrank.Config
}

// DefaultOptions returns the canonical configuration for each
// algorithm.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgorithmYAKE,
		TopN:      10,
		YAKE:      yake.DefaultConfig(),
		RAKE:      rake.DefaultConfig(),
		TextRank:  textrank.DefaultConfig(),
	}
}

// Extract runs the configured algorithm over text and returns the top
// keywords ordered by descending relevance.
func Extract(text string, opts Options) ([]Keyword, error) {
	stops := opts.Stopwords
	if stops == nil {
		stops = stoplist.English()
	}
	topN := opts.TopN
	if topN < 1 {
		topN = 10
	}

	switch opts.Algorithm {
	case AlgorithmYAKE, "":
		cfg := opts.YAKE
		if cfg.Threshold == 0 && cfg.NGram == 0 && cfg.WindowSize == 0 {
			punct := cfg.Punctuation
			cfg = yake.DefaultConfig()
			cfg.Punctuation = punct
		}
		ext, err := yake.New(text, stops, cfg)
		if err != nil {
			return nil, err
		}
		return convertYAKE(ext.RankedKeywordScores(topN)), nil

	case AlgorithmRAKE:
		ext, err := rake.New(text, stops, opts.RAKE)
		if err != nil {
			return nil, err
		}
		return convertRAKE(ext.RankedPhraseScores(topN)), nil

	case AlgorithmTextRank:
		cfg := opts.TextRank
		if cfg.WindowSize == 0 && cfg.Damping == 0 && cfg.Tolerance == 0 && cfg.MaxIterations == 0 {
			punct := cfg.Punctuation
			cfg = textrank.DefaultConfig()
			cfg.Punctuation = punct
		}
		ext, err := textrank.New(text, stops, cfg)
		if err != nil {
			return nil, err
		}
		return convertTextRank(ext.RankedPhraseScores(topN)), nil
	}

	return nil, fmt.Errorf("%w: unknown algorithm %q", internalerr.ErrInvalidInput, opts.Algorithm)
}

func convertYAKE(in []yake.KeywordScore) []Keyword {
	out := make([]Keyword, len(in))
	for i, ks := range in {
		out[i] = Keyword{Term: ks.Keyword, Score: ks.Score}
	}
	return out
}

func convertRAKE(in []rake.KeywordScore) []Keyword {
	out := make([]Keyword, len(in))
	for i, ks := range in {
		out[i] = Keyword{Term: ks.Keyword, Score: ks.Score}
	}
	return out
}

func convertTextRank(in []textrank.KeywordScore) []Keyword {
	out := make([]Keyword, len(in))
	for i, ks := range in {
		out[i] = Keyword{Term: ks.Keyword, Score: ks.Score}
	}
	return out
}
