// Package stoplist manages the stopword sets consumed by the extractors.
package stoplist

import (
	"sort"
	"strings"
)

// Set is a case-insensitive stopword set.
type Set struct {
	words map[string]struct{}
}

// New creates a set from the given words, lowercasing them.
func New(words []string) *Set {
	set := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		set.Add(w)
	}
	return set
}

// Has checks whether word is a stopword.
func (s *Set) Has(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Add adds a word to the set.
func (s *Set) Add(word string) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return
	}
	s.words[w] = struct{}{}
}

// Remove removes a word from the set.
func (s *Set) Remove(word string) {
	delete(s.words, strings.ToLower(word))
}

// All returns the stopwords in lexicographic order.
func (s *Set) All() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of stopwords in the set.
func (s *Set) Len() int {
	return len(s.words)
}
