package textproc

// SplitPhrases breaks sentences into runs of content words: stopwords
// close the current phrase, punctuation tokens are skipped without closing
// it, and maxLen > 0 caps the words per phrase. Phrases never cross
// sentence boundaries. Tokens are the sentences' normal forms.
func SplitPhrases(sentences []Sentence, stops map[string]struct{}, punct map[string]struct{}, maxLen int) [][]string {
	var phrases [][]string
	var phrase []string

	closePhrase := func() {
		if len(phrase) > 0 {
			phrases = append(phrases, phrase)
			phrase = nil
		}
	}

	for _, sentence := range sentences {
		for _, term := range sentence.Terms {
			if IsPunctuation(term, punct) {
				continue
			}
			if _, stop := stops[term]; stop {
				closePhrase()
				continue
			}
			phrase = append(phrase, term)
			if maxLen > 0 && len(phrase) >= maxLen {
				closePhrase()
			}
		}
		closePhrase()
	}
	return phrases
}
