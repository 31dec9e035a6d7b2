package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/salience/pkg/salience/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and creates the
// schema if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	path TEXT UNIQUE NOT NULL,
	title TEXT,
	algorithm TEXT,
	extracted_at TEXT
);

CREATE TABLE IF NOT EXISTS doc_keywords (
	doc_id TEXT NOT NULL,
	pos INTEGER NOT NULL,
	term TEXT NOT NULL,
	score REAL NOT NULL,
	UNIQUE(doc_id, term),
	FOREIGN KEY(doc_id) REFERENCES docs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_doc_keywords_term ON doc_keywords(term);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertDoc inserts or updates a document and its keyword list
func (s *sqliteStore) UpsertDoc(ctx context.Context, d store.Doc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var docID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM docs WHERE path = ?`, d.Path).Scan(&docID)
	if err == sql.ErrNoRows {
		docID = d.ID
		if docID == "" {
			docID = store.NewID()
		}
	} else if err != nil {
		return err
	}

	const stmt = `
INSERT INTO docs (id, path, title, algorithm, extracted_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET
	title=excluded.title,
	algorithm=excluded.algorithm,
	extracted_at=excluded.extracted_at;
`

	_, err = tx.ExecContext(
		ctx,
		stmt,
		docID,
		d.Path,
		d.Title,
		d.Algorithm,
		d.ExtractedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	if err := replaceDocKeywords(ctx, tx, docID, d.Keywords); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceDocKeywords(ctx context.Context, tx *sql.Tx, docID string, keywords []store.Keyword) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM doc_keywords WHERE doc_id=?`, docID); err != nil {
		return err
	}
	if len(keywords) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO doc_keywords (doc_id, pos, term, score) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, kw := range keywords {
		if kw.Term == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, docID, i, kw.Term, kw.Score); err != nil {
			return err
		}
	}
	return nil
}

// GetDoc retrieves a document by ID
func (s *sqliteStore) GetDoc(ctx context.Context, id string) (store.Doc, bool, error) {
	return s.loadDoc(ctx, id)
}

// GetDocByPath retrieves a document by path
func (s *sqliteStore) GetDocByPath(ctx context.Context, path string) (store.Doc, bool, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM docs WHERE path = ?`, path).Scan(&id)
	if err == sql.ErrNoRows {
		return store.Doc{}, false, nil
	}
	if err != nil {
		return store.Doc{}, false, err
	}
	return s.loadDoc(ctx, id)
}

func (s *sqliteStore) loadDoc(ctx context.Context, id string) (store.Doc, bool, error) {
	var (
		doc         store.Doc
		extractedAt string
	)
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, path, title, algorithm, extracted_at FROM docs WHERE id = ?`,
		id,
	).Scan(&doc.ID, &doc.Path, &doc.Title, &doc.Algorithm, &extractedAt)
	if err == sql.ErrNoRows {
		return store.Doc{}, false, nil
	}
	if err != nil {
		return store.Doc{}, false, err
	}

	if extractedAt != "" {
		ts, err := time.Parse(time.RFC3339, extractedAt)
		if err != nil {
			return store.Doc{}, false, err
		}
		doc.ExtractedAt = ts
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT term, score FROM doc_keywords WHERE doc_id = ? ORDER BY pos`,
		id,
	)
	if err != nil {
		return store.Doc{}, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var kw store.Keyword
		if err := rows.Scan(&kw.Term, &kw.Score); err != nil {
			return store.Doc{}, false, err
		}
		doc.Keywords = append(doc.Keywords, kw)
	}
	if err := rows.Err(); err != nil {
		return store.Doc{}, false, err
	}

	return doc, true, nil
}

// DocsByKeyword retrieves documents whose keyword list contains term,
// most relevant first
func (s *sqliteStore) DocsByKeyword(ctx context.Context, term string, limit int) ([]store.Doc, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT doc_id
FROM doc_keywords
WHERE term = ?
ORDER BY score DESC, doc_id
LIMIT ?;
`, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	docs := make([]store.Doc, 0, len(ids))
	for _, id := range ids {
		doc, found, err := s.loadDoc(ctx, id)
		if err != nil {
			return nil, err
		}
		if found {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// TopKeywords retrieves the terms appearing in the most documents
func (s *sqliteStore) TopKeywords(ctx context.Context, limit int) ([]store.KeywordCount, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT term, COUNT(DISTINCT doc_id) AS docs
FROM doc_keywords
GROUP BY term
ORDER BY docs DESC, term
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.KeywordCount
	for rows.Next() {
		var kc store.KeywordCount
		if err := rows.Scan(&kc.Term, &kc.Docs); err != nil {
			return nil, err
		}
		out = append(out, kc)
	}
	return out, rows.Err()
}
