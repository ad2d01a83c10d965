package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace replaces every run of whitespace with a single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops non-printing control characters but keeps whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeUnicode converts s to NFC so composed and decomposed accents compare equal.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// Lower folds s to lower case with language-neutral rules.
// A Caser keeps state, so one is created per call.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Upper folds s to upper case with language-neutral rules.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// RemoveWhitespace deletes every whitespace rune.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
