// Package textutils normalizes free text taken from bank statements.
package textutils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespacePattern  = regexp.MustCompile(`\s+`)
	obfuscationPattern = regexp.MustCompile(`[•*]`)
)

// NormalizeWhitespace collapses runs of whitespace (newlines and tabs included)
// into a single space and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// StripObfuscationMarks removes the masking characters banks use to hide
// document and account digits, e.g. "***.456.789-**".
func StripObfuscationMarks(s string) string {
	return strings.TrimSpace(obfuscationPattern.ReplaceAllString(s, ""))
}

// NormalizeForMatching lowercases s and strips diacritics so keyword lookups
// are case and accent insensitive ("Crédito" -> "credito").
func NormalizeForMatching(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.ToLower(result)
}

// CleanName keeps letters, spaces, apostrophes, periods and hyphens, then
// collapses whitespace. Digits and punctuation left over from masked documents go away.
func CleanName(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsSpace(r):
			return r
		case r == '\'', r == '.', r == '-':
			return r
		}
		return -1
	}, s)
	return NormalizeWhitespace(cleaned)
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ContainsLetter reports whether s has at least one letter.
func ContainsLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
