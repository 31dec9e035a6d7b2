// Package cooccurrence builds a co-occurrence matrix for a fixed
// vocabulary over a set of documents. Two vocabulary words co-occur when
// they fall within a symmetric window of each other inside the same
// document; counts are normalized by the largest observed count so all
// relation strengths lie in [0, 1].
package cooccurrence

import (
	"fmt"
	"strings"

	"github.com/cognicore/salience/pkg/salience/internalerr"
)

// Relation pairs a related word with its normalized co-occurrence
// strength.
type Relation struct {
	Word     string  `json:"word"`
	Strength float64 `json:"strength"`
}

// Matrix holds the normalized co-occurrence counts for a vocabulary.
type Matrix struct {
	values    [][]float64
	wordIndex map[string]int
	words     []string
}

// New builds the matrix for the given vocabulary over documents, using a
// symmetric window of windowSize words on each side. Duplicate vocabulary
// entries are collapsed, first occurrence wins. Documents are matched on
// whitespace-separated tokens.
func New(documents []string, vocabulary []string, windowSize int) (*Matrix, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("%w: window size must be at least 1, got %d", internalerr.ErrInvalidConfig, windowSize)
	}

	wordIndex := make(map[string]int, len(vocabulary))
	var words []string
	for _, w := range vocabulary {
		if w == "" {
			continue
		}
		if _, ok := wordIndex[w]; ok {
			continue
		}
		wordIndex[w] = len(words)
		words = append(words, w)
	}

	values := make([][]float64, len(words))
	for i := range values {
		values[i] = make([]float64, len(words))
	}

	maxCount := 0.0
	for _, doc := range documents {
		tokens := strings.Fields(doc)
		for i, token := range tokens {
			first, ok := wordIndex[token]
			if !ok {
				continue
			}
			start := i - windowSize
			if start < 0 {
				start = 0
			}
			end := i + windowSize + 1
			if end > len(tokens) {
				end = len(tokens)
			}
			for j := start; j < end; j++ {
				if j == i {
					continue
				}
				other, ok := wordIndex[tokens[j]]
				if !ok {
					continue
				}
				values[first][other]++
				if values[first][other] > maxCount {
					maxCount = values[first][other]
				}
			}
		}
	}

	if maxCount > 0 {
		for i := range values {
			for j := range values[i] {
				values[i][j] /= maxCount
			}
		}
	}

	return &Matrix{values: values, wordIndex: wordIndex, words: words}, nil
}

// Labels returns the vocabulary in matrix order.
func (m *Matrix) Labels() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

// Strength returns the normalized co-occurrence strength of (a, b), 0.0
// when either word is outside the vocabulary.
func (m *Matrix) Strength(a, b string) float64 {
	i, ok := m.wordIndex[a]
	if !ok {
		return 0
	}
	j, ok := m.wordIndex[b]
	if !ok {
		return 0
	}
	return m.values[i][j]
}

// Relations returns the non-zero relations of word in vocabulary order,
// nil when the word is outside the vocabulary.
func (m *Matrix) Relations(word string) []Relation {
	i, ok := m.wordIndex[word]
	if !ok {
		return nil
	}
	var relations []Relation
	for j, strength := range m.values[i] {
		if strength == 0 {
			continue
		}
		relations = append(relations, Relation{Word: m.words[j], Strength: strength})
	}
	return relations
}

// Row returns the matrix row of word in Labels order.
func (m *Matrix) Row(word string) ([]float64, error) {
	i, ok := m.wordIndex[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q not in vocabulary", internalerr.ErrNotFound, word)
	}
	out := make([]float64, len(m.values[i]))
	copy(out, m.values[i])
	return out, nil
}
