package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/salience/pkg/salience/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// TestSQLiteIntegrationBasic tests basic CRUD operations
func TestSQLiteIntegrationBasic(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	doc := store.Doc{
		Path:        "/corpus/article-1.txt",
		Title:       "Test Article",
		Algorithm:   "yake",
		ExtractedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Keywords: []store.Keyword{
			{Term: "machine learning", Score: 0.95},
			{Term: "data science", Score: 0.81},
		},
	}

	if err := st.UpsertDoc(ctx, doc); err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}

	retrieved, found, err := st.GetDocByPath(ctx, doc.Path)
	if err != nil {
		t.Fatalf("GetDocByPath: %v", err)
	}
	if !found {
		t.Fatal("document should be found")
	}

	if retrieved.Title != doc.Title {
		t.Errorf("Title mismatch: got %q, want %q", retrieved.Title, doc.Title)
	}
	if retrieved.Algorithm != "yake" {
		t.Errorf("Algorithm mismatch: got %q", retrieved.Algorithm)
	}
	if !retrieved.ExtractedAt.Equal(doc.ExtractedAt) {
		t.Errorf("ExtractedAt mismatch: got %v, want %v", retrieved.ExtractedAt, doc.ExtractedAt)
	}
	if len(retrieved.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(retrieved.Keywords))
	}
	if retrieved.Keywords[0].Term != "machine learning" {
		t.Errorf("keyword order not preserved: %v", retrieved.Keywords)
	}
}

// TestSQLiteIntegrationReUpsert tests that re-upserting replaces keywords
func TestSQLiteIntegrationReUpsert(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	path := "/corpus/article.txt"

	doc1 := store.Doc{
		Path:        path,
		Title:       "Original Title",
		Algorithm:   "yake",
		ExtractedAt: time.Now(),
		Keywords:    []store.Keyword{{Term: "alpha", Score: 0.5}},
	}
	if err := st.UpsertDoc(ctx, doc1); err != nil {
		t.Fatalf("first UpsertDoc: %v", err)
	}
	first, _, _ := st.GetDocByPath(ctx, path)

	doc2 := store.Doc{
		Path:        path,
		Title:       "Updated Title",
		Algorithm:   "rake",
		ExtractedAt: time.Now(),
		Keywords:    []store.Keyword{{Term: "beta", Score: 0.7}, {Term: "gamma", Score: 0.6}},
	}
	if err := st.UpsertDoc(ctx, doc2); err != nil {
		t.Fatalf("second UpsertDoc: %v", err)
	}

	second, found, err := st.GetDocByPath(ctx, path)
	if err != nil {
		t.Fatalf("GetDocByPath: %v", err)
	}
	if !found {
		t.Fatal("document should be found")
	}
	if second.ID != first.ID {
		t.Errorf("re-upsert changed ID: %q != %q", first.ID, second.ID)
	}
	if second.Title != "Updated Title" {
		t.Errorf("expected updated title, got %q", second.Title)
	}
	if len(second.Keywords) != 2 || second.Keywords[0].Term != "beta" {
		t.Errorf("expected replaced keywords, got %v", second.Keywords)
	}
}

func TestSQLiteGetDocMissing(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, found, err := st.GetDoc(ctx, store.NewID())
	if err != nil {
		t.Fatalf("GetDoc: %v", err)
	}
	if found {
		t.Fatal("expected not found")
	}
}

func TestSQLiteDocsByKeyword(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	docs := []store.Doc{
		{Path: "/a", ExtractedAt: time.Now(), Keywords: []store.Keyword{{Term: "go", Score: 0.3}}},
		{Path: "/b", ExtractedAt: time.Now(), Keywords: []store.Keyword{{Term: "go", Score: 0.9}}},
		{Path: "/c", ExtractedAt: time.Now(), Keywords: []store.Keyword{{Term: "rust", Score: 0.8}}},
	}
	for _, d := range docs {
		if err := st.UpsertDoc(ctx, d); err != nil {
			t.Fatalf("UpsertDoc(%s): %v", d.Path, err)
		}
	}

	got, err := st.DocsByKeyword(ctx, "go", 10)
	if err != nil {
		t.Fatalf("DocsByKeyword: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(got))
	}
	if got[0].Path != "/b" || got[1].Path != "/a" {
		t.Errorf("expected [/b /a] by descending score, got [%s %s]", got[0].Path, got[1].Path)
	}
}

func TestSQLiteTopKeywords(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	st.UpsertDoc(ctx, store.Doc{Path: "/a", ExtractedAt: time.Now(), Keywords: []store.Keyword{
		{Term: "go", Score: 0.5}, {Term: "rust", Score: 0.4},
	}})
	st.UpsertDoc(ctx, store.Doc{Path: "/b", ExtractedAt: time.Now(), Keywords: []store.Keyword{
		{Term: "go", Score: 0.6},
	}})

	top, err := st.TopKeywords(ctx, 10)
	if err != nil {
		t.Fatalf("TopKeywords: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(top))
	}
	if top[0].Term != "go" || top[0].Docs != 2 {
		t.Errorf("expected go with 2 docs first, got %+v", top[0])
	}
	if top[1].Term != "rust" || top[1].Docs != 1 {
		t.Errorf("expected rust with 1 doc second, got %+v", top[1])
	}
}
