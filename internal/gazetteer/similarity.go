package gazetteer

import (
	"github.com/agnivade/levenshtein"
)

// editDistance returns the Levenshtein edit distance between a and b:
// the minimum number of single-character insertions, deletions, or
// substitutions (cost 1 each) transforming a into b.
//
// Grounded on the teacher's sim() helper in address_matcher.go, which
// uses the same library for its edit-distance term.
func editDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// longestCommonSubsequence returns the length of the longest common
// subsequence of a and b: the longest sequence of characters appearing
// in both, in order, not necessarily contiguous. Used only as a
// secondary ranking signal when fuzzy scores tie; prefix classification
// does not use it.
func longestCommonSubsequence(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// fuzzyScore scores a matched key m against a query q using the
// distance-normalized similarity the spec defines for fuzzy index hits:
// score = 1 - dist/max(|q|, |m|).
func fuzzyScore(q, m string, dist int) float64 {
	denom := len(q)
	if len(m) > denom {
		denom = len(m)
	}
	if denom == 0 {
		return 1
	}
	return 1 - float64(dist)/float64(denom)
}

// maxEditDistance implements the per-span edit-distance budget: tighter
// for short spans (where a single edit is proportionally large), looser
// for long ones, scaled to 20% of the span's letter count.
func maxEditDistance(spanNoSpaces string) int {
	l := len(spanNoSpaces)
	switch {
	case l <= 2:
		return 0
	case l <= 5:
		return 1
	default:
		d := int(0.2 * float64(l))
		if d < 1 {
			d = 1
		}
		return d
	}
}
