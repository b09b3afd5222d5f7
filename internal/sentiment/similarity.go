// AngelaMos | 2026
// similarity.go

package sentiment

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity is the normalized Levenshtein ratio of a and b in [0, 1],
// computed over runes. Identical strings score 1.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

func bestSimilarity(word string, lexicon []string) float64 {
	best := 0.0
	for _, entry := range lexicon {
		if s := Similarity(word, entry); s > best {
			best = s
			if best == 1 {
				break
			}
		}
	}
	return best
}
