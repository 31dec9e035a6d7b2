// Package textrank implements graph-based keyword extraction: content
// words become nodes of a co-occurrence graph built over a sliding window,
// node ranks are computed by damped iteration until convergence, and
// phrases are scored by the mean rank of their words.
package textrank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cognicore/salience/pkg/salience/internalerr"
	"github.com/cognicore/salience/pkg/salience/textproc"
)

// Config holds the ranking parameters.
type Config struct {
	// WindowSize is the maximum token distance for a co-occurrence edge.
	WindowSize int

	// Damping is the damping factor of the iteration, in (0, 1).
	Damping float64

	// Tolerance stops the iteration once no rank moves by more than
	// this amount.
	Tolerance float64

	// MaxIterations bounds the iteration count regardless of
	// convergence.
	MaxIterations int

	// Punctuation is the set of punctuation symbols. Nil selects
	// textproc.DefaultPunctuation.
	Punctuation []string
}

// DefaultConfig returns the conventional parameters: window 2, damping
// 0.85, tolerance 5e-5, at most 100 iterations.
func DefaultConfig() Config {
	return Config{
		WindowSize:    2,
		Damping:       0.85,
		Tolerance:     0.00005,
		MaxIterations: 100,
	}
}

func (c Config) validate() error {
	if c.WindowSize < 1 {
		return fmt.Errorf("%w: window size must be at least 1, got %d", internalerr.ErrInvalidConfig, c.WindowSize)
	}
	if c.Damping <= 0 || c.Damping >= 1 {
		return fmt.Errorf("%w: damping must be in (0, 1), got %v", internalerr.ErrInvalidConfig, c.Damping)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %v", internalerr.ErrInvalidConfig, c.Tolerance)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", internalerr.ErrInvalidConfig, c.MaxIterations)
	}
	return nil
}

// KeywordScore pairs a ranked word or phrase with its score.
type KeywordScore struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}

// Extractor holds the word ranks and phrase scores of one document.
type Extractor struct {
	wordRanks     map[string]float64
	phraseScores  map[string]float64
	rankedWords   []KeywordScore
	rankedPhrases []KeywordScore
}

// New ranks the words of text. Empty text yields an extractor with no
// nodes, never an error; a malformed Config is rejected.
func New(text string, stopwords []string, cfg Config) (*Extractor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	punctuation := cfg.Punctuation
	if punctuation == nil {
		punctuation = textproc.DefaultPunctuation
	}
	punct := textproc.SymbolSet(punctuation)

	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}

	sentences := textproc.SplitSentences(text)
	words := contentWords(sentences, stops, punct)
	g := buildGraph(words, cfg.WindowSize)
	wordRanks := g.run(cfg.Damping, cfg.Tolerance, cfg.MaxIterations)

	phrases := textproc.SplitPhrases(sentences, stops, punct, 0)
	phraseScores, phraseOrder := scorePhrases(phrases, wordRanks)

	return &Extractor{
		wordRanks:     wordRanks,
		phraseScores:  phraseScores,
		rankedWords:   rank(wordRanks, g.order),
		rankedPhrases: rank(phraseScores, phraseOrder),
	}, nil
}

// contentWords flattens the sentences into the filtered token stream the
// graph is built from: stopwords and punctuation drop out, order is kept.
func contentWords(sentences []textproc.Sentence, stops, punct map[string]struct{}) []string {
	var words []string
	for _, sentence := range sentences {
		for _, term := range sentence.Terms {
			if textproc.IsPunctuation(term, punct) {
				continue
			}
			if _, stop := stops[term]; stop {
				continue
			}
			words = append(words, term)
		}
	}
	return words
}

// graph is a weighted undirected co-occurrence graph. Edge weights count
// co-occurrences. order fixes the node iteration order (first occurrence)
// so the damped iteration sums in a reproducible order.
type graph struct {
	edges     map[string]map[string]float64
	neighbors map[string][]string
	order     []string
}

func buildGraph(words []string, windowSize int) *graph {
	g := &graph{
		edges:     make(map[string]map[string]float64),
		neighbors: make(map[string][]string),
	}
	for i, word := range words {
		g.addNode(word)
		for j := i + 1; j <= i+windowSize && j < len(words); j++ {
			g.addEdge(word, words[j])
			g.addEdge(words[j], word)
		}
	}
	return g
}

func (g *graph) addNode(word string) {
	if _, ok := g.edges[word]; !ok {
		g.edges[word] = make(map[string]float64)
		g.order = append(g.order, word)
	}
}

func (g *graph) addEdge(from, to string) {
	g.addNode(from)
	if _, ok := g.edges[from][to]; !ok {
		g.neighbors[from] = append(g.neighbors[from], to)
	}
	g.edges[from][to]++
}

// run iterates rank(n) = (1-d) + d * Σ w(m,n)/out(m) * rank(m) over all
// neighbors m until every rank moves less than tol, or maxIter rounds.
func (g *graph) run(damping, tol float64, maxIter int) map[string]float64 {
	ranks := make(map[string]float64, len(g.order))
	outSums := make(map[string]float64, len(g.order))
	for _, node := range g.order {
		ranks[node] = 1.0
		sum := 0.0
		for _, nbr := range g.neighbors[node] {
			sum += g.edges[node][nbr]
		}
		outSums[node] = sum
	}

	for iter := 0; iter < maxIter; iter++ {
		next := make(map[string]float64, len(g.order))
		maxDelta := 0.0
		for _, node := range g.order {
			sum := 0.0
			for _, nbr := range g.neighbors[node] {
				if outSums[nbr] == 0 {
					continue
				}
				sum += g.edges[node][nbr] / outSums[nbr] * ranks[nbr]
			}
			score := (1 - damping) + damping*sum
			next[node] = score
			if delta := math.Abs(score - ranks[node]); delta > maxDelta {
				maxDelta = delta
			}
		}
		ranks = next
		if maxDelta < tol {
			break
		}
	}
	return ranks
}

func scorePhrases(phrases [][]string, wordRanks map[string]float64) (map[string]float64, []string) {
	scores := make(map[string]float64, len(phrases))
	var order []string

	for _, phrase := range phrases {
		key := strings.Join(phrase, " ")
		if _, seen := scores[key]; seen {
			continue
		}
		sum := 0.0
		for _, word := range phrase {
			sum += wordRanks[word]
		}
		scores[key] = sum / float64(len(phrase))
		order = append(order, key)
	}
	return scores, order
}

func rank(scores map[string]float64, order []string) []KeywordScore {
	ranked := make([]KeywordScore, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, KeywordScore{Keyword: key, Score: scores[key]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})
	return ranked
}

// WordRank returns the rank of a single word, 0.0 when absent.
func (e *Extractor) WordRank(word string) float64 {
	return e.wordRanks[word]
}

// PhraseScore returns the score of a phrase, 0.0 when absent.
func (e *Extractor) PhraseScore(phrase string) float64 {
	return e.phraseScores[phrase]
}

// RankedWords returns up to n words ordered by rank descending, ties
// broken lexicographically.
func (e *Extractor) RankedWords(n int) []string {
	return topKeywords(e.rankedWords, n)
}

// RankedPhrases returns up to n phrases ordered by score descending.
func (e *Extractor) RankedPhrases(n int) []string {
	return topKeywords(e.rankedPhrases, n)
}

// RankedWordScores returns up to n (word, rank) pairs.
func (e *Extractor) RankedWordScores(n int) []KeywordScore {
	return topScores(e.rankedWords, n)
}

// RankedPhraseScores returns up to n (phrase, score) pairs.
func (e *Extractor) RankedPhraseScores(n int) []KeywordScore {
	return topScores(e.rankedPhrases, n)
}

func topKeywords(ranked []KeywordScore, n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[i].Keyword
	}
	return out
}

func topScores(ranked []KeywordScore, n int) []KeywordScore {
	if n <= 0 {
		return nil
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]KeywordScore, n)
	copy(out, ranked[:n])
	return out
}
