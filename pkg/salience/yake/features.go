package yake

import (
	"math"
	"regexp"

	"github.com/cognicore/salience/pkg/salience/textproc"
)

// epsilon guards every division whose denominator could be zero on
// degenerate inputs (one-word text, single sentence, absent context).
var epsilon = math.Nextafter(1, 2) - 1

var (
	upperCaseRegex   = regexp.MustCompile(`^\p{Lu}+$`)
	capitalizedRegex = regexp.MustCompile(`^\p{Lu}\p{Ll}+$`)
)

// extractFeatures computes the composite importance weight H for every
// term with at least one occurrence. Lower H marks a more important term;
// the inversion into a 0-1 relevance score happens during candidate
// scoring.
//
// H = (relatedness * position) / (casing + frequency/relatedness + dispersion/relatedness)
func extractFeatures(doc *document) map[string]float64 {
	if len(doc.termOrder) == 0 {
		return map[string]float64{}
	}

	// shared aggregates over all terms' raw frequencies
	tfMax := 0.0
	tfSum := 0.0
	for _, term := range doc.termOrder {
		tf := float64(len(doc.occurrences[term]))
		tfSum += tf
		if tf > tfMax {
			tfMax = tf
		}
	}
	n := float64(len(doc.termOrder))
	tfMean := tfSum / n
	variance := 0.0
	for _, term := range doc.termOrder {
		d := float64(len(doc.occurrences[term])) - tfMean
		variance += d * d
	}
	tfStd := math.Sqrt(variance / n)

	weights := make(map[string]float64, len(doc.termOrder))
	for _, term := range doc.termOrder {
		occs := doc.occurrences[term]
		tf := float64(len(occs))

		casing := casingFeature(occs, tf)
		frequency := tf / (tfMean + tfStd + epsilon)
		position := positionFeature(occs)
		relatedness := 1 + contextSpread(doc.contexts[term])*(tf/tfMax)
		dispersion := float64(distinctSentences(occs)) / (float64(doc.sentences) + epsilon)

		weights[term] = relatedness * position / (casing + frequency/relatedness + dispersion/relatedness)
	}
	return weights
}

// casingFeature counts surface forms that are entirely upper-case (and
// longer than one grapheme) or capitalized-initial. Sentence-initial
// capitalization is not evidence of true casing and is skipped.
func casingFeature(occs []occurrence, tf float64) float64 {
	upper, capitalized := 0.0, 0.0
	for _, o := range occs {
		if textproc.GraphemeCount(o.word) > 1 && upperCaseRegex.MatchString(o.word) {
			upper++
		}
		if o.offset != o.shift && capitalizedRegex.MatchString(o.word) {
			capitalized++
		}
	}
	return math.Max(upper, capitalized) / (1 + math.Log(tf))
}

// positionFeature favors terms that appear in early sentences:
// ln(ln(3 + median sentence index)).
func positionFeature(occs []occurrence) float64 {
	return math.Log(math.Log(3 + medianSentence(occs)))
}

// medianSentence returns the median of the occurrence sentence indices.
// Occurrences are appended sentence by sentence, so the list is already
// sorted by sentence index.
func medianSentence(occs []occurrence) float64 {
	n := len(occs)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(occs[n/2].sentence)
	}
	return (float64(occs[n/2-1].sentence) + float64(occs[n/2].sentence)) / 2
}

// contextSpread is wl + wr: the ratios of distinct neighbors to total
// neighbors on each side, zero for an empty side.
func contextSpread(ctx *termContext) float64 {
	if ctx == nil {
		return 0
	}
	return uniqueRatio(ctx.left) + uniqueRatio(ctx.right)
}

func uniqueRatio(neighbors []string) float64 {
	if len(neighbors) == 0 {
		return 0
	}
	distinct := make(map[string]struct{}, len(neighbors))
	for _, n := range neighbors {
		distinct[n] = struct{}{}
	}
	return float64(len(distinct)) / (float64(len(neighbors)) + epsilon)
}

func distinctSentences(occs []occurrence) int {
	seen := make(map[int]struct{}, len(occs))
	for _, o := range occs {
		seen[o.sentence] = struct{}{}
	}
	return len(seen)
}
