package detect

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/adrg/strutil/metrics"
)

// DefaultThreshold is the similarity a token must exceed to count as a match.
const DefaultThreshold = 80

// indel scores substitutions as a deletion plus an insertion, so the ratio
// below stays within 0..100.
var indel = &metrics.Levenshtein{
	CaseSensitive: true,
	InsertCost:    1,
	DeleteCost:    1,
	ReplaceCost:   2,
}

// Ratio returns the similarity of a and b as an integer in [0, 100].
// Identical strings score 100; an empty string scores 0 against anything.
func Ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	dist := indel.Distance(a, b)
	return int(math.Round(100 * float64(total-dist) / float64(total)))
}

// Matcher holds one snapshot of the keyword and exception lists. Build a new
// Matcher for every scan so list edits take effect immediately.
type Matcher struct {
	keywords   []string
	exceptions map[string]struct{}
	threshold  int
}

// NewMatcher prepares keywords and exceptions for matching. Keywords are
// normalized once and tried in the order given; exceptions are only
// lowercased.
func NewMatcher(keywords, exceptions []string, threshold int) *Matcher {
	m := &Matcher{
		keywords:   make([]string, 0, len(keywords)),
		exceptions: make(map[string]struct{}, len(exceptions)),
		threshold:  threshold,
	}
	for _, k := range keywords {
		m.keywords = append(m.keywords, Normalize(k))
	}
	for _, e := range exceptions {
		m.exceptions[strings.ToLower(e)] = struct{}{}
	}
	return m
}

// Threshold returns the configured similarity threshold.
func (m *Matcher) Threshold() int {
	return m.threshold
}

// Match reports the normalized keyword the token resolves to. The first
// keyword scoring strictly above the threshold wins.
func (m *Matcher) Match(token string) (string, bool) {
	normalized := Normalize(token)

	if _, ok := m.exceptions[normalized]; ok {
		return "", false
	}

	for _, keyword := range m.keywords {
		if Ratio(normalized, keyword) > m.threshold {
			return keyword, true
		}
	}
	return "", false
}

// Match is a one-shot form of (*Matcher).Match.
func Match(token string, keywords, exceptions []string, threshold int) (string, bool) {
	return NewMatcher(keywords, exceptions, threshold).Match(token)
}
