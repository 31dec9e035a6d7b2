package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store is the main interface for persisting and querying extraction
// results
type Store interface {
	Close() error

	// Docs
	UpsertDoc(ctx context.Context, d Doc) error
	GetDoc(ctx context.Context, id string) (Doc, bool, error)
	GetDocByPath(ctx context.Context, path string) (Doc, bool, error)
	DocsByKeyword(ctx context.Context, term string, limit int) ([]Doc, error)

	// Aggregates
	TopKeywords(ctx context.Context, limit int) ([]KeywordCount, error)
}

// Doc represents a stored document with its extracted keywords
type Doc struct {
	ID          string
	Path        string
	Title       string
	Algorithm   string
	ExtractedAt time.Time
	Keywords    []Keyword
}

// Keyword pairs a stored term with its relevance score
type Keyword struct {
	Term  string
	Score float64
}

// KeywordCount aggregates how many documents surfaced a term
type KeywordCount struct {
	Term string
	Docs int64
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a fresh document identifier.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
