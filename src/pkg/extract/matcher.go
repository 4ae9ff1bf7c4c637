package extract

import (
	"regexp"
	"strings"
	"unicode"
)

/*
wordMatcher finds whole-word, case-insensitive occurrences of any entry of a
vocabulary. All entries are compiled into one escaped alternation; at a given
text position the earliest vocabulary entry wins.
*/
type wordMatcher struct {
	pattern *regexp.Regexp
}

// newWordMatcher returns nil for an empty vocabulary: nothing can match.
func newWordMatcher(words []string) *wordMatcher {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) == 0 {
		return nil
	}
	return &wordMatcher{
		pattern: regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

// First returns the leftmost match in text.
func (m *wordMatcher) First(text string) (string, bool) {
	if m == nil {
		return "", false
	}
	match := m.pattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// All returns every non-overlapping match, left to right.
func (m *wordMatcher) All(text string) []string {
	if m == nil {
		return nil
	}
	return m.pattern.FindAllString(text, -1)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
