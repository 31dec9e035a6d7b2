package stoplist

import (
	"reflect"
	"testing"
)

func TestSetBasics(t *testing.T) {
	s := New([]string{"The", "and", "OF"})
	for _, w := range []string{"the", "The", "THE", "and", "of"} {
		if !s.Has(w) {
			t.Errorf("Has(%q) = false, want true", w)
		}
	}
	if s.Has("word") {
		t.Error("Has(word) = true, want false")
	}

	s.Add("Word")
	if !s.Has("word") {
		t.Error("added word not found")
	}
	s.Remove("WORD")
	if s.Has("word") {
		t.Error("removed word still found")
	}
}

func TestAllSorted(t *testing.T) {
	s := New([]string{"zebra", "apple", "mango"})
	if got := s.All(); !reflect.DeepEqual(got, []string{"apple", "mango", "zebra"}) {
		t.Errorf("All = %v, want sorted order", got)
	}
}

func TestAddIgnoresEmpty(t *testing.T) {
	s := New(nil)
	s.Add("  ")
	s.Add("")
	if s.Len() != 0 {
		t.Errorf("Len = %d after adding blanks, want 0", s.Len())
	}
}

func TestEnglishList(t *testing.T) {
	words := English()
	if len(words) == 0 {
		t.Fatal("empty English list")
	}
	s := New(words)
	for _, w := range []string{"the", "and", "of", "is"} {
		if !s.Has(w) {
			t.Errorf("English list missing %q", w)
		}
	}
	// returned slice is a copy, mutating it must not corrupt the list
	words[0] = "mutated"
	if English()[0] == "mutated" {
		t.Error("English() returned the backing array")
	}
}
