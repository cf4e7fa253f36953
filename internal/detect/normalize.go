// Package detect finds obfuscated banned words in chat text.
//
// Tokens are normalized (lowercase, transliterated to ASCII, digit-for-vowel
// leetspeak undone) and compared against a keyword list with an edit-distance
// similarity ratio. Every function in this package is pure and safe for
// concurrent use.
package detect

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// leetReplacer undoes digit-for-vowel substitutions. Only these five digits
// are mapped.
var leetReplacer = strings.NewReplacer(
	"4", "a",
	"3", "e",
	"1", "i",
	"0", "o",
	"7", "u",
)

// Normalize canonicalizes a single token for comparison.
func Normalize(token string) string {
	s := strings.ToLower(token)
	// Transliteration can emit capitals (日 -> "Ri "), so lower again.
	s = strings.ToLower(StripAccents(s))
	return leetReplacer.Replace(s)
}

// StripAccents maps text to its closest ASCII spelling. Combining marks are
// dropped first, then every remaining rune is transliterated: ł -> l,
// ß -> ss, Cyrillic а -> a. Runes with no ASCII spelling are removed.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if result, _, err := transform.String(t, s); err == nil {
		s = result
	}
	return unidecode.Unidecode(s)
}
