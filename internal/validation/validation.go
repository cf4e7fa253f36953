package validation

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"wordwatch/internal/detect"
)

// MaxWordLength is the longest entry accepted in a word list.
const MaxWordLength = 100

// ValidateWord checks that an entry is a single non-empty word of sane length.
func ValidateWord(word string) (bool, string) {
	if word == "" {
		return false, "word is required"
	}
	if utf8.RuneCountInString(word) > MaxWordLength {
		return false, "word must be at most 100 characters"
	}
	if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
		return false, "word must not contain whitespace"
	}
	return true, ""
}

// NormalizeNewWord prepares an entry before it is stored: surrounding spaces
// are trimmed, the word is transliterated to ASCII and lowercased. Leetspeak
// digits are kept as typed.
func NormalizeNewWord(word string) string {
	return strings.ToLower(strings.TrimSpace(detect.StripAccents(strings.TrimSpace(word))))
}

// NormalizeWordKey prepares an entry for lookup or deletion. Only trimming and
// lowercasing are applied, so an entry is removed exactly as it is listed.
func NormalizeWordKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
