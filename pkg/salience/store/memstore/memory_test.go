package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/cognicore/salience/pkg/salience/store"
)

func sampleDoc(path string, keywords ...store.Keyword) store.Doc {
	return store.Doc{
		Path:        path,
		Title:       "Doc at " + path,
		Algorithm:   "yake",
		ExtractedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Keywords:    keywords,
	}
}

func TestUpsertAndGetByPath(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	doc := sampleDoc("/docs/a.txt", store.Keyword{Term: "machine learning", Score: 0.9})
	if err := s.UpsertDoc(ctx, doc); err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}

	got, found, err := s.GetDocByPath(ctx, "/docs/a.txt")
	if err != nil {
		t.Fatalf("GetDocByPath: %v", err)
	}
	if !found {
		t.Fatal("document should be found")
	}
	if got.ID == "" {
		t.Error("expected assigned ID")
	}
	if len(got.Keywords) != 1 || got.Keywords[0].Term != "machine learning" {
		t.Errorf("unexpected keywords: %v", got.Keywords)
	}
}

func TestUpsertReplacesByPath(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	if err := s.UpsertDoc(ctx, sampleDoc("/docs/a.txt", store.Keyword{Term: "old", Score: 0.5})); err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}
	first, _, _ := s.GetDocByPath(ctx, "/docs/a.txt")

	if err := s.UpsertDoc(ctx, sampleDoc("/docs/a.txt", store.Keyword{Term: "new", Score: 0.7})); err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}
	second, _, _ := s.GetDocByPath(ctx, "/docs/a.txt")

	if first.ID != second.ID {
		t.Errorf("re-upsert changed ID: %q != %q", first.ID, second.ID)
	}
	if len(second.Keywords) != 1 || second.Keywords[0].Term != "new" {
		t.Errorf("expected keywords replaced, got %v", second.Keywords)
	}
}

func TestGetDocMissing(t *testing.T) {
	s := New()
	defer s.Close()

	_, found, err := s.GetDoc(context.Background(), store.NewID())
	if err != nil {
		t.Fatalf("GetDoc: %v", err)
	}
	if found {
		t.Fatal("expected not found")
	}
}

func TestDocsByKeywordOrderedByScore(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	s.UpsertDoc(ctx, sampleDoc("/a", store.Keyword{Term: "go", Score: 0.3}))
	s.UpsertDoc(ctx, sampleDoc("/b", store.Keyword{Term: "go", Score: 0.9}))
	s.UpsertDoc(ctx, sampleDoc("/c", store.Keyword{Term: "rust", Score: 0.8}))

	docs, err := s.DocsByKeyword(ctx, "go", 10)
	if err != nil {
		t.Fatalf("DocsByKeyword: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].Path != "/b" || docs[1].Path != "/a" {
		t.Errorf("expected [/b /a], got [%s %s]", docs[0].Path, docs[1].Path)
	}
}

func TestTopKeywords(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	s.UpsertDoc(ctx, sampleDoc("/a", store.Keyword{Term: "go", Score: 0.5}, store.Keyword{Term: "rust", Score: 0.4}))
	s.UpsertDoc(ctx, sampleDoc("/b", store.Keyword{Term: "go", Score: 0.6}))

	top, err := s.TopKeywords(ctx, 10)
	if err != nil {
		t.Fatalf("TopKeywords: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(top))
	}
	if top[0].Term != "go" || top[0].Docs != 2 {
		t.Errorf("expected go with 2 docs first, got %+v", top[0])
	}
}

func TestCopyOnReturn(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	s.UpsertDoc(ctx, sampleDoc("/a", store.Keyword{Term: "go", Score: 0.5}))

	got, _, _ := s.GetDocByPath(ctx, "/a")
	got.Keywords[0].Term = "mutated"

	again, _, _ := s.GetDocByPath(ctx, "/a")
	if again.Keywords[0].Term != "go" {
		t.Error("returned document shares internal state")
	}
}
