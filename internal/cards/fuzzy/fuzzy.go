// Package fuzzy implements edit-distance similarity for card name
// matching. It backs the search ranker's fallback when no exact or
// substring match exists.
package fuzzy

import (
	"strings"
	"unicode/utf8"
)

// DefaultThreshold is the minimum normalized similarity a candidate must
// reach before it is accepted as a fuzzy match.
const DefaultThreshold = 0.8

// Distance calculates the Levenshtein distance between two strings:
// the minimum number of single-character edits required to change one
// into the other.
func Distance(a, b string) int {
	s1 := []rune(a)
	s2 := []rune(b)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	d := make([][]int, len(s1)+1)
	for i := range d {
		d[i] = make([]int, len(s2)+1)
	}

	for i := 0; i <= len(s1); i++ {
		d[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}

			d[i][j] = min(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[len(s1)][len(s2)]
}

// Similarity returns the normalized Levenshtein similarity between two
// strings: (maxLen - distance) / maxLen, in [0, 1]. Comparison is
// case-insensitive. Two empty strings are identical.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1
	}

	return float64(maxLen-Distance(a, b)) / float64(maxLen)
}

// BestMatch returns the index of the candidate most similar to query,
// provided its similarity exceeds threshold. Ties keep the first-seen
// candidate. The second return is false when nothing qualifies.
func BestMatch(query string, candidates []string, threshold float64) (int, bool) {
	bestIdx := -1
	bestScore := threshold

	for i, candidate := range candidates {
		score := Similarity(query, candidate)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	return bestIdx, bestIdx >= 0
}
