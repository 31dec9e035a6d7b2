package yake

import "github.com/cognicore/salience/pkg/salience/textproc"

// levenshteinDistance computes the edit distance between a and b over
// grapheme clusters, so combining characters count as single units.
func levenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}

	ga := textproc.Graphemes(a)
	gb := textproc.Graphemes(b)

	prev := make([]int, len(gb)+1)
	cur := make([]int, len(gb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range ga {
		cur[0] = i + 1
		for j, cb := range gb {
			cost := 1
			if ca == cb {
				cost = 0
			}
			cur[j+1] = min(prev[j+1]+1, min(cur[j]+1, prev[j]+cost))
		}
		prev, cur = cur, prev
	}

	return prev[len(gb)]
}

// similarityRatio is 1 - distance/max(len(a), len(b)) over grapheme
// counts. Comparing two empty strings yields 0.
func similarityRatio(a, b string) float64 {
	maxLen := max(textproc.GraphemeCount(a), textproc.GraphemeCount(b))
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(levenshteinDistance(a, b))/float64(maxLen)
}
