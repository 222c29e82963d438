package diff

// Similarity returns an edit-distance-based similarity ratio in [0,1]
// between two strings, defined as
// (max(len) - levenshtein(a,b)) / max(len) over Unicode code points.
// Two empty strings are fully similar. Used only as a gating heuristic
// for word-level diffing, never for display.
func Similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1.0
	}

	return float64(longest-levenshtein(ra, rb)) / float64(longest)
}

// levenshtein computes the classic edit distance between two rune slices
// using a two-row dynamic programming table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
