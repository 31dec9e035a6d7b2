package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/salience/pkg/salience/internalerr"
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// Punctuation represents the punctuation symbol configuration
type Punctuation struct {
	Symbols []string `yaml:"symbols"`
}

// LoadPunctuation loads punctuation symbols from a YAML file
func LoadPunctuation(path string) (*Punctuation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Punctuation
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Extraction represents the extraction parameter configuration. Zero
// fields fall back to the algorithm defaults when applied.
type Extraction struct {
	Algorithm     string  `yaml:"algorithm"`
	Threshold     float64 `yaml:"threshold"`
	NGram         int     `yaml:"ngram"`
	WindowSize    int     `yaml:"window_size"`
	Damping       float64 `yaml:"damping"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	PhraseLength  int     `yaml:"phrase_length"`
	TopN          int     `yaml:"top_n"`
}

// LoadExtraction loads extraction parameters from a YAML file
func LoadExtraction(path string) (*Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var e Extraction
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, err
	}

	switch e.Algorithm {
	case "", "yake", "rake", "textrank":
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", internalerr.ErrInvalidConfig, e.Algorithm)
	}

	return &e, nil
}
