package config

import (
	"fmt"

	"github.com/cognicore/salience/pkg/salience/stoplist"
	"github.com/cognicore/salience/pkg/salience/textproc"
)

// Loader aggregates configuration file paths. Empty paths resolve to
// the built-in defaults.
type Loader struct {
	StoplistPath    string
	PunctuationPath string
	ExtractionPath  string
}

// Components holds the fully resolved configuration ready for use by
// the extraction pipeline.
type Components struct {
	Stopwords   []string
	Punctuation []string
	Extraction  Extraction
}

// Load resolves every configured path, falling back to defaults where
// no path is set.
func (l Loader) Load() (*Components, error) {
	c := &Components{
		Stopwords:   stoplist.English(),
		Punctuation: textproc.DefaultPunctuation,
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		c.Stopwords = sl.Terms
	}

	if l.PunctuationPath != "" {
		p, err := LoadPunctuation(l.PunctuationPath)
		if err != nil {
			return nil, fmt.Errorf("load punctuation: %w", err)
		}
		c.Punctuation = p.Symbols
	}

	if l.ExtractionPath != "" {
		e, err := LoadExtraction(l.ExtractionPath)
		if err != nil {
			return nil, fmt.Errorf("load extraction: %w", err)
		}
		c.Extraction = *e
	}

	return c, nil
}
