package detect

import "strings"

// PrimarySource is the EmbedIndex of a hit found in the message body.
const PrimarySource = -1

// Result describes the first hit of a scan.
type Result struct {
	// Keyword is the normalized keyword that matched.
	Keyword string
	// Token is the original token that triggered the match.
	Token string
	// SourceText is the full text the token came from: the message body or
	// the single embedded text that contained it.
	SourceText string
	// EmbedIndex is the position of the embedded text, or PrimarySource.
	EmbedIndex int
}

// FromEmbed reports whether the hit came from an embedded text.
func (r Result) FromEmbed() bool {
	return r.EmbedIndex != PrimarySource
}

// Scan looks for the first token matching a keyword. The message body is
// scanned first, then each embedded text in order; scanning stops at the
// first hit.
func (m *Matcher) Scan(text string, embeds []string) (Result, bool) {
	if keyword, token, ok := m.scanText(text); ok {
		return Result{Keyword: keyword, Token: token, SourceText: text, EmbedIndex: PrimarySource}, true
	}
	for i, embed := range embeds {
		if keyword, token, ok := m.scanText(embed); ok {
			return Result{Keyword: keyword, Token: token, SourceText: embed, EmbedIndex: i}, true
		}
	}
	return Result{}, false
}

func (m *Matcher) scanText(text string) (keyword, token string, ok bool) {
	if len(m.keywords) == 0 {
		return "", "", false
	}
	for _, t := range strings.Fields(text) {
		if k, hit := m.Match(t); hit {
			return k, t, true
		}
	}
	return "", "", false
}

// Scan is a one-shot form of (*Matcher).Scan.
func Scan(text string, embeds, keywords, exceptions []string, threshold int) (Result, bool) {
	return NewMatcher(keywords, exceptions, threshold).Scan(text, embeds)
}
