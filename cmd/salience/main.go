// Command salience extracts keywords from a document and prints them
// as text or JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/salience/internal/htmltext"
	"github.com/cognicore/salience/pkg/salience"
	"github.com/cognicore/salience/pkg/salience/config"
	"github.com/cognicore/salience/pkg/salience/rake"
	"github.com/cognicore/salience/pkg/salience/textrank"
	"github.com/cognicore/salience/pkg/salience/yake"
)

func main() {
	var (
		inputPath    = flag.String("input", "", "Input file (default: stdin)")
		isHTML       = flag.Bool("html", false, "Strip HTML markup before extraction")
		algo         = flag.String("algo", "yake", "Algorithm: yake, rake or textrank")
		topN         = flag.Int("top", 10, "Number of keywords to print")
		asJSON       = flag.Bool("json", false, "Print keywords as JSON")
		stoplistPath = flag.String("stoplist", "", "Stoplist YAML file (optional)")
		configPath   = flag.String("config", "", "Extraction parameter YAML file (optional)")
	)
	flag.Parse()

	text, err := readInput(*inputPath)
	if err != nil {
		log.Fatal("Failed to read input:", err)
	}
	if *isHTML {
		text = htmltext.Strip(text)
	}

	loader := config.Loader{
		StoplistPath:   *stoplistPath,
		ExtractionPath: *configPath,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	opts := buildOptions(*algo, *topN, components)

	keywords, err := salience.Extract(text, opts)
	if err != nil {
		log.Fatal("Extraction failed:", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(keywords); err != nil {
			log.Fatal("Failed to encode keywords:", err)
		}
		return
	}

	for _, kw := range keywords {
		fmt.Printf("%.4f\t%s\n", kw.Score, kw.Term)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// buildOptions maps the resolved configuration onto extraction options.
// Flags win over the config file for algorithm and top N unless left at
// their defaults.
func buildOptions(algo string, topN int, components *config.Components) salience.Options {
	opts := salience.DefaultOptions()
	opts.Stopwords = components.Stopwords

	ext := components.Extraction
	if ext.Algorithm != "" {
		opts.Algorithm = salience.Algorithm(ext.Algorithm)
	}
	if algo != "" {
		opts.Algorithm = salience.Algorithm(algo)
	}
	if ext.TopN > 0 {
		opts.TopN = ext.TopN
	}
	if topN > 0 {
		opts.TopN = topN
	}

	yakeCfg := yake.DefaultConfig()
	if ext.Threshold > 0 {
		yakeCfg.Threshold = ext.Threshold
	}
	if ext.NGram > 0 {
		yakeCfg.NGram = ext.NGram
	}
	if ext.WindowSize > 0 {
		yakeCfg.WindowSize = ext.WindowSize
	}
	yakeCfg.Punctuation = components.Punctuation
	opts.YAKE = yakeCfg

	rakeCfg := rake.DefaultConfig()
	if ext.PhraseLength > 0 {
		rakeCfg.PhraseLength = ext.PhraseLength
	}
	rakeCfg.Punctuation = components.Punctuation
	opts.RAKE = rakeCfg

	trCfg := textrank.DefaultConfig()
	if ext.WindowSize > 0 {
		trCfg.WindowSize = ext.WindowSize
	}
	if ext.Damping > 0 {
		trCfg.Damping = ext.Damping
	}
	if ext.Tolerance > 0 {
		trCfg.Tolerance = ext.Tolerance
	}
	if ext.MaxIterations > 0 {
		trCfg.MaxIterations = ext.MaxIterations
	}
	trCfg.Punctuation = components.Punctuation
	opts.TextRank = trCfg

	return opts
}
