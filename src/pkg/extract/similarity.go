package extract

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// SimilarityFunc scores two strings in [0, 1]; 1 means identical.
type SimilarityFunc func(candidate, word string) float64

/*
RatcliffObershelp is the default name similarity: 2*M/T over characters,
where M is the number of characters in matching blocks and T the combined
length. Comparison is case-sensitive.
*/
func RatcliffObershelp(candidate, word string) float64 {
	if candidate == "" && word == "" {
		return 1
	}
	matcher := difflib.NewMatcher(strings.Split(candidate, ""), strings.Split(word, ""))
	return matcher.Ratio()
}

/*
ClosestMatch returns the candidate most similar to word whose score reaches
cutoff. Equal scores keep the earliest candidate. ok is false when nothing
reaches the cutoff.
*/
func ClosestMatch(word string, candidates []string, cutoff float64, similarity SimilarityFunc) (best string, score float64, ok bool) {
	if word == "" {
		return "", 0, false
	}
	for _, candidate := range candidates {
		s := similarity(candidate, word)
		if s < cutoff {
			continue
		}
		if !ok || s > score {
			best, score, ok = candidate, s, true
		}
	}
	return best, score, ok
}
