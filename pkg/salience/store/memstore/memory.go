package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/salience/pkg/salience/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu        sync.RWMutex
	docs      map[string]store.Doc
	pathIndex map[string]string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		docs:      make(map[string]store.Doc),
		pathIndex: make(map[string]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertDoc inserts or updates a document, keyed by path.
func (s *Store) UpsertDoc(ctx context.Context, d store.Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.Path == "" {
		return nil
	}

	if existingID, ok := s.pathIndex[d.Path]; ok {
		d.ID = existingID
	} else {
		if d.ID == "" {
			d.ID = store.NewID()
		}
		s.pathIndex[d.Path] = d.ID
	}

	s.docs[d.ID] = copyDoc(d)
	return nil
}

// GetDoc returns a document by ID.
func (s *Store) GetDoc(ctx context.Context, id string) (store.Doc, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if doc, ok := s.docs[id]; ok {
		return copyDoc(doc), true, nil
	}
	return store.Doc{}, false, nil
}

// GetDocByPath returns a document by path.
func (s *Store) GetDocByPath(ctx context.Context, path string) (store.Doc, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.pathIndex[path]; ok {
		if doc, exists := s.docs[id]; exists {
			return copyDoc(doc), true, nil
		}
	}
	return store.Doc{}, false, nil
}

// DocsByKeyword returns documents whose keyword list contains term,
// most relevant first.
func (s *Store) DocsByKeyword(ctx context.Context, term string, limit int) ([]store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	type scored struct {
		doc   store.Doc
		score float64
	}

	var results []scored
	for _, doc := range s.docs {
		for _, kw := range doc.Keywords {
			if kw.Term == term {
				results = append(results, scored{doc: copyDoc(doc), score: kw.Score})
				break
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].doc.ID < results[j].doc.ID
	})

	if len(results) > limit {
		results = results[:limit]
	}

	out := make([]store.Doc, len(results))
	for i, res := range results {
		out[i] = res.doc
	}
	return out, nil
}

// TopKeywords returns the terms appearing in the most documents.
func (s *Store) TopKeywords(ctx context.Context, limit int) ([]store.KeywordCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	counts := make(map[string]int64)
	for _, doc := range s.docs {
		for _, kw := range doc.Keywords {
			counts[kw.Term]++
		}
	}

	out := make([]store.KeywordCount, 0, len(counts))
	for term, n := range counts {
		out = append(out, store.KeywordCount{Term: term, Docs: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Docs != out[j].Docs {
			return out[i].Docs > out[j].Docs
		}
		return out[i].Term < out[j].Term
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyDoc(d store.Doc) store.Doc {
	out := d
	out.Keywords = make([]store.Keyword, len(d.Keywords))
	copy(out.Keywords, d.Keywords)
	return out
}
