package yake

import (
	"math"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"kitten", "kitten", 0},
		{"kitten", "sitting", 3},
		{"data store", "data stores", 1},
		{"", "abc", 3},
		{"abc", "", 3},
		{"café", "cafe", 1},
		{"flaw", "lawn", 2},
	}
	for _, tc := range cases {
		if got := levenshteinDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimilarityRatio(t *testing.T) {
	if got := similarityRatio("", ""); got != 0 {
		t.Errorf("ratio of two empty strings = %v, want 0", got)
	}
	if got := similarityRatio("same", "same"); got != 1 {
		t.Errorf("ratio of identical strings = %v, want 1", got)
	}
	got := similarityRatio("data store", "data stores")
	want := 1 - 1.0/11.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ratio(data store, data stores) = %v, want %v", got, want)
	}
	if got < 0.8 {
		t.Errorf("near-duplicate ratio %v below dedup threshold 0.8", got)
	}
}

func TestSimilarityRatioGraphemes(t *testing.T) {
	// the combining-accent form of é is one grapheme cluster, so the two
	// spellings differ by a single substitution, not an insert plus a swap
	if got := levenshteinDistance("café", "café"); got != 1 {
		t.Errorf("distance over grapheme clusters = %d, want 1", got)
	}
	if n := levenshteinDistance("éé", "ee"); n != 2 {
		t.Errorf("combining clusters counted as %d edits, want 2", n)
	}
}
