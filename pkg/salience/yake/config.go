package yake

import (
	"fmt"

	"github.com/cognicore/salience/pkg/salience/internalerr"
)

// Config holds the extraction parameters.
type Config struct {
	// Threshold is the Levenshtein similarity ratio, in (0, 1], above
	// which a later candidate is dropped as a near-duplicate of an
	// earlier one.
	Threshold float64

	// NGram is the maximum candidate length in words.
	NGram int

	// WindowSize is the number of neighboring words on each side that
	// contribute to a term's co-occurrence context.
	WindowSize int

	// Punctuation is the set of punctuation symbols. Nil selects
	// textproc.DefaultPunctuation.
	Punctuation []string
}

// DefaultConfig returns the canonical parameters: similarity threshold
// 0.85, trigram candidates, context window of 2.
func DefaultConfig() Config {
	return Config{
		Threshold:  0.85,
		NGram:      3,
		WindowSize: 2,
	}
}

func (c Config) validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold must be in (0, 1], got %v", internalerr.ErrInvalidConfig, c.Threshold)
	}
	if c.NGram < 1 {
		return fmt.Errorf("%w: ngram size must be at least 1, got %d", internalerr.ErrInvalidConfig, c.NGram)
	}
	if c.WindowSize < 1 {
		return fmt.Errorf("%w: window size must be at least 1, got %d", internalerr.ErrInvalidConfig, c.WindowSize)
	}
	return nil
}
