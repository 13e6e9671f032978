package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Similarity returns the normalized edit-similarity ratio between two
// strings, in [0, 1]. Identical strings score 1.0 deterministically; a
// comparison against the empty string scores 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 || lb == 0 {
		return 0.0
	}

	dist := levenshtein.ComputeDistance(a, b)
	longest := la
	if lb > longest {
		longest = lb
	}
	return 1.0 - float64(dist)/float64(longest)
}

// JaccardSimilarity computes character n-gram set overlap between two
// strings: |intersection| / |union|. It is a cheaper alternative to
// edit-similarity for long-text comparison. n defaults to 3 when zero
// or negative.
func JaccardSimilarity(a, b string, n int) float64 {
	if n <= 0 {
		n = 3
	}

	gramsA := ngrams(strings.ToLower(a), n)
	gramsB := ngrams(strings.ToLower(b), n)
	if len(gramsA) == 0 || len(gramsB) == 0 {
		return 0.0
	}

	intersection := 0
	for gram := range gramsA {
		if gramsB[gram] {
			intersection++
		}
	}
	union := len(gramsA) + len(gramsB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// ngrams returns the set of character n-grams of text.
func ngrams(text string, n int) map[string]bool {
	runes := []rune(text)
	if len(runes) < n {
		return nil
	}
	grams := make(map[string]bool, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams[string(runes[i:i+n])] = true
	}
	return grams
}

// truncateRunes caps text at limit runes.
func truncateRunes(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
