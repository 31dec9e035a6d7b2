// Package textproc provides the sentence and word segmentation layer shared
// by the extraction algorithms.
//
// Segmentation follows Unicode UAX #29 boundaries so that the same input
// always yields the same sentence and word stream regardless of locale
// settings. No stopword or punctuation filtering happens here: the
// co-occurrence context of the extractors needs the unfiltered word stream,
// so filtering is left to the consumers.
package textproc

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

var (
	// collapses hard whitespace into single spaces before segmentation
	spaceRegex = regexp.MustCompile(`[\n\t\r]`)

	// stripped from every word token: possessive suffix, commas, periods
	// and stray whitespace left by the boundary splitter
	specialCharRegex = regexp.MustCompile(`('s|,|\.|\s)`)
)

// Sentence holds the literal words of one sentence together with their
// lowercase normal forms. Words and Terms are index-aligned.
type Sentence struct {
	Words  []string
	Terms  []string
	Length int
}

// SplitSentences segments text into sentences on Unicode sentence
// boundaries, then splits each sentence on word boundaries. Tokens that
// reduce to the empty string after trimming and special-character
// stripping are discarded. Empty input yields no sentences.
func SplitSentences(text string) []Sentence {
	clean := spaceRegex.ReplaceAllString(strings.TrimSpace(text), " ")
	if clean == "" {
		return nil
	}

	var sentences []Sentence
	state := -1
	var sent string
	for clean != "" {
		sent, clean, state = uniseg.FirstSentenceInString(clean, state)
		sentences = append(sentences, newSentence(strings.TrimSpace(sent)))
	}
	return sentences
}

func newSentence(s string) Sentence {
	var words, terms []string
	state := -1
	var w string
	for s != "" {
		w, s, state = uniseg.FirstWordInString(s, state)
		w = specialCharRegex.ReplaceAllString(strings.TrimSpace(w), "")
		if w == "" {
			continue
		}
		words = append(words, w)
		terms = append(terms, strings.ToLower(w))
	}
	return Sentence{Words: words, Terms: terms, Length: len(words)}
}

// GraphemeCount returns the number of Unicode grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into its grapheme clusters.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// SymbolSet builds a lookup set from a list of punctuation symbols.
func SymbolSet(symbols []string) map[string]struct{} {
	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}

// IsPunctuation reports whether word is empty or a single punctuation
// grapheme contained in the given symbol set.
func IsPunctuation(word string, symbols map[string]struct{}) bool {
	if word == "" {
		return true
	}
	if GraphemeCount(word) != 1 {
		return false
	}
	_, ok := symbols[word]
	return ok
}
