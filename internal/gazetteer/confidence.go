package gazetteer

import "github.com/xrash/smetrics"

// Confidence blends Jaro-Winkler similarity with the edit-distance score
// into a single presentational number in [0, 1]. It plays no part in
// slot admission; callers use it only to decide whether to surface a
// result or flag it for manual review.
func Confidence(query, matched string) float64 {
	if query == "" || matched == "" {
		return 0
	}
	jw := smetrics.JaroWinkler(query, matched, 0.7, 4)
	ed := fuzzyScore(query, matched, editDistance(query, matched))
	return (jw + ed) / 2
}
