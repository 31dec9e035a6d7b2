// Command salience-indexer walks a directory of text or HTML files,
// extracts keywords from each document and stores the results in a
// SQLite database. It can also query an existing index.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cognicore/salience/internal/htmltext"
	"github.com/cognicore/salience/pkg/salience"
	"github.com/cognicore/salience/pkg/salience/config"
	"github.com/cognicore/salience/pkg/salience/store"
	"github.com/cognicore/salience/pkg/salience/store/sqlite"
)

func main() {
	var (
		dbPath       = flag.String("db", "", "Database path (required)")
		dataDir      = flag.String("data", "", "Directory of .txt/.html files to index")
		algo         = flag.String("algo", "yake", "Algorithm: yake, rake or textrank")
		topN         = flag.Int("top", 10, "Keywords stored per document")
		stoplistPath = flag.String("stoplist", "", "Stoplist YAML file (optional)")
		queryTerm    = flag.String("query", "", "List documents containing this keyword")
		showTop      = flag.Int("top-keywords", 0, "Show the N most frequent keywords in the index")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	if *dataDir != "" {
		components, err := config.Loader{StoplistPath: *stoplistPath}.Load()
		if err != nil {
			log.Fatal("Failed to load configuration:", err)
		}
		if err := indexDir(ctx, st, *dataDir, *algo, *topN, components.Stopwords); err != nil {
			log.Fatal("Indexing failed:", err)
		}
	}

	if *queryTerm != "" {
		docs, err := st.DocsByKeyword(ctx, *queryTerm, 20)
		if err != nil {
			log.Fatal("Query failed:", err)
		}
		for _, doc := range docs {
			fmt.Printf("%s\t%s\n", doc.ID, doc.Path)
		}
	}

	if *showTop > 0 {
		top, err := st.TopKeywords(ctx, *showTop)
		if err != nil {
			log.Fatal("Query failed:", err)
		}
		for _, kc := range top {
			fmt.Printf("%d\t%s\n", kc.Docs, kc.Term)
		}
	}
}

func indexDir(ctx context.Context, st store.Store, dir, algo string, topN int, stopwords []string) error {
	indexed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".html" && ext != ".htm" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		text := string(data)
		title := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if ext == ".html" || ext == ".htm" {
			page, err := htmltext.Parse(text)
			if err != nil {
				log.Printf("Skipping %s: %v", path, err)
				return nil
			}
			text = page.Text
			if page.Title != "" {
				title = page.Title
			}
		}

		keywords, err := salience.Extract(text, salience.Options{
			Algorithm: salience.Algorithm(algo),
			Stopwords: stopwords,
			TopN:      topN,
		})
		if err != nil {
			return fmt.Errorf("extract %s: %w", path, err)
		}

		doc := store.Doc{
			Path:        path,
			Title:       title,
			Algorithm:   algo,
			ExtractedAt: time.Now(),
			Keywords:    make([]store.Keyword, len(keywords)),
		}
		for i, kw := range keywords {
			doc.Keywords[i] = store.Keyword{Term: kw.Term, Score: kw.Score}
		}

		if err := st.UpsertDoc(ctx, doc); err != nil {
			return err
		}

		indexed++
		if indexed%50 == 0 {
			log.Printf("Indexed %d documents...", indexed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Indexed %d documents from %s", indexed, dir)
	return nil
}
