package yake

import (
	"strconv"
	"strings"

	"github.com/cognicore/salience/pkg/salience/textproc"
)

// candidate is one n-gram keyed by its normalized form. lexical holds the
// normal-form tokens; surfaces collects every literal realization seen, so
// len(surfaces) is the candidate's occurrence count.
type candidate struct {
	lexical  []string
	surfaces [][]string
}

// occurrence records one appearance of a term. offset is the word offset
// within the whole document, shift the offset of the enclosing sentence's
// first word; offset == shift marks a sentence-initial appearance.
type occurrence struct {
	word     string
	sentence int
	offset   int
	shift    int
}

// termContext holds a term's neighbor multisets, accumulated across the
// whole document within the configured window.
type termContext struct {
	left  []string
	right []string
}

// document is the result of the single pass over the sentences: the
// candidate map, the per-term occurrence lists and neighbor contexts, and
// the dedup counts for terms that participate in multi-word candidates.
// candOrder and termOrder fix the iteration order for everything
// downstream; without them map iteration would make scores run-dependent.
type document struct {
	candidates map[string]*candidate
	candOrder  []string
	dedup      map[string]float64

	occurrences map[string][]occurrence
	termOrder   []string
	contexts    map[string]*termContext

	sentences int
}

type windowEntry struct {
	term string
}

// buildDocument selects candidates and builds the co-occurrence context in
// one pass per sentence. Candidate n-grams are rejected when any token is a
// punctuation symbol, a stopword, or parses as a number. The context pass
// is ungated: every token, stopwords included, shifts the window buffer, so
// neighbor relationships reflect the true word stream. Occurrences are
// recorded for every non-punctuation token.
func buildDocument(sentences []textproc.Sentence, ngram, windowSize int, stops, punct map[string]struct{}) *document {
	doc := &document{
		candidates:  make(map[string]*candidate),
		dedup:       make(map[string]float64),
		occurrences: make(map[string][]occurrence),
		contexts:    make(map[string]*termContext),
		sentences:   len(sentences),
	}

	invalid := func(term string) bool {
		if textproc.IsPunctuation(term, punct) {
			return true
		}
		if _, ok := stops[term]; ok {
			return true
		}
		_, err := strconv.ParseFloat(term, 64)
		return err == nil
	}

	shift := 0
	for i, sentence := range sentences {
		buffer := make([]windowEntry, 0, windowSize+1)

		for j := range sentence.Words {
			// candidate selection
			for k := j + 1; k <= min(j+ngram, sentence.Length); k++ {
				terms := sentence.Terms[j:k]
				if anyInvalid(terms, invalid) {
					continue
				}
				key := strings.Join(terms, " ")
				entry, ok := doc.candidates[key]
				if !ok {
					if len(terms) > 1 {
						for _, t := range terms {
							doc.dedup[t]++
						}
					}
					entry = &candidate{lexical: terms}
					doc.candidates[key] = entry
					doc.candOrder = append(doc.candOrder, key)
				}
				entry.surfaces = append(entry.surfaces, sentence.Words[j:k])
			}

			// context building
			term := sentence.Terms[j]
			if !textproc.IsPunctuation(term, punct) {
				if _, ok := doc.occurrences[term]; !ok {
					doc.termOrder = append(doc.termOrder, term)
				}
				doc.occurrences[term] = append(doc.occurrences[term], occurrence{
					word:     sentence.Words[j],
					sentence: i,
					offset:   shift + j,
					shift:    shift,
				})
			}

			for _, prior := range buffer {
				cur := doc.context(term)
				cur.left = append(cur.left, prior.term)
				prev := doc.context(prior.term)
				prev.right = append(prev.right, term)
			}

			buffer = append(buffer, windowEntry{term: term})
			if len(buffer) > windowSize {
				buffer = buffer[1:]
			}
		}

		shift += sentence.Length
	}

	return doc
}

func (d *document) context(term string) *termContext {
	ctx, ok := d.contexts[term]
	if !ok {
		ctx = &termContext{}
		d.contexts[term] = ctx
	}
	return ctx
}

func anyInvalid(terms []string, invalid func(string) bool) bool {
	for _, t := range terms {
		if invalid(t) {
			return true
		}
	}
	return false
}
