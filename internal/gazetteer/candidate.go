package gazetteer

import "strings"

// maxWindow bounds how many tokens a single candidate span may contain.
// Administrative names in the reference data rarely run past four
// words; a larger window only multiplies work without improving recall.
const maxWindow = 4

// candidate is one windowed span considered by the resolver, tagged
// with the input segment it was drawn from.
type candidate struct {
	span       string // normalized
	segmentIdx int
}

// generateCandidates splits the raw input on commas and walks the
// resulting segments in reverse order, since Vietnamese addresses are
// conventionally written street-first and province-last, and the
// resolver wants to see the most discriminating (province-like) text
// first. Each segment is normalized and tokenized on whitespace; within
// a segment, windows are enumerated right endpoint first (rightmost
// token to leftmost), and for each endpoint every window length from 1
// up to maxWindow ending there is emitted.
func generateCandidates(input string) []candidate {
	rawSegments := strings.Split(input, ",")
	var out []candidate
	for i := len(rawSegments) - 1; i >= 0; i-- {
		seg := Normalize(rawSegments[i])
		if seg == "" {
			continue
		}
		tokens := strings.Split(seg, " ")
		n := len(tokens)
		for end := n - 1; end >= 0; end-- {
			maxLen := maxWindow
			if end+1 < maxLen {
				maxLen = end + 1
			}
			for length := 1; length <= maxLen; length++ {
				start := end - length + 1
				out = append(out, candidate{
					span:       strings.Join(tokens[start:end+1], " "),
					segmentIdx: i,
				})
			}
		}
	}
	return out
}
