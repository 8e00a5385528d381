package match

import (
	"sort"
	"strings"
)

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions needed to
// turn one into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// Keep a as the shorter string so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity maps the case-insensitive edit distance onto [0, 1], where 1
// means identical.
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	d := Levenshtein(strings.ToLower(a), strings.ToLower(b))

	return 1.0 - float64(d)/float64(max(len(a), len(b)))
}

// MinSimilarity is the score below which a candidate is not worth suggesting.
const MinSimilarity = 0.5

// Suggest returns up to limit distinct candidates similar to name, best
// first. Ties keep candidate order. name itself is never suggested.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	seen := make(map[string]struct{}, len(candidates))

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}

		if s := Similarity(name, c); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
