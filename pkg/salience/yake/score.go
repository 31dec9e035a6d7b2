package yake

import "sort"

// dedupCandidates drops near-duplicate candidates. Keys are visited in
// insertion order of first acceptance; a candidate is dropped when its key
// is similar (ratio >= threshold) to any earlier surviving key. The order
// is arbitrary but fixed: it is part of the reproducibility contract.
func dedupCandidates(doc *document, threshold float64) []string {
	survivors := make([]string, 0, len(doc.candOrder))
	for _, key := range doc.candOrder {
		dropped := false
		for _, kept := range survivors {
			if similarityRatio(key, kept) >= threshold {
				dropped = true
				break
			}
		}
		if !dropped {
			survivors = append(survivors, key)
		}
	}
	return survivors
}

// scoreCandidates combines the per-word weights into per-candidate scores
// and ranks them.
//
// raw(kw) = boost * Π H(w) / (TF(kw) * (1 + Σ H(w)))
//
// where boost is the candidate's dedup count when its own key recurs
// inside multi-word candidates, 1 otherwise, and TF(kw) is the number of
// surface forms observed. Lower raw means more important; the public score
// is 1 - raw/maxRaw, so scores lie in [0, 1] with higher = more relevant.
func scoreCandidates(doc *document, survivors []string, weights map[string]float64) (map[string]float64, []KeywordScore) {
	if len(survivors) == 0 {
		return map[string]float64{}, nil
	}

	raw := make(map[string]float64, len(survivors))
	maxRaw := 0.0
	for _, key := range survivors {
		cand := doc.candidates[key]

		product := 1.0
		if boost, ok := doc.dedup[key]; ok {
			product = boost
		}
		sum := 0.0
		for _, term := range cand.lexical {
			h, ok := weights[term]
			if !ok {
				h = epsilon
			}
			product *= h
			sum += h
		}

		denom := 1 + sum
		if sum == -1 {
			denom = 1 - epsilon
		}
		score := product / (float64(len(cand.surfaces)) * denom)
		raw[key] = score
		if score > maxRaw {
			maxRaw = score
		}
	}
	if maxRaw == 0 {
		maxRaw = epsilon
	}

	scores := make(map[string]float64, len(survivors))
	ranked := make([]KeywordScore, 0, len(survivors))
	for _, key := range survivors {
		score := 1 - raw[key]/maxRaw
		scores[key] = score
		ranked = append(ranked, KeywordScore{Keyword: key, Score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})

	return scores, ranked
}
