package registry

import (
	"fmt"
	"regexp"
)

// Patterns are the compiled format patterns. A compiled *regexp.Regexp is
// safe for concurrent use.
type Patterns struct {
	StudentNumber *regexp.Regexp
	PersonName    *regexp.Regexp
	Email         *regexp.Regexp
	Phone         *regexp.Regexp
	SubjectCode   *regexp.Regexp
	ISODate       *regexp.Regexp
	Clock12       *regexp.Regexp
	RFIDTag       *regexp.Regexp
}

const (
	studentNumberPattern = `^\d{2}-\d{4}$`
	// letters, inner spaces, hyphens and apostrophes; first and last rune must be a letter
	personNamePattern  = `^\p{L}(?:[\p{L}\p{M} '’-]*[\p{L}\p{M}])?$`
	emailPattern       = `^[A-Za-z0-9.!#$%&'*+/=?^_{|}~-]+@[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?)+$`
	subjectCodePattern = `^[A-Za-z0-9-]+$`
	isoDatePattern     = `^\d{4}-\d{2}-\d{2}$`
	clock12Pattern     = `^(?:0?[1-9]|1[0-2]):[0-5]\d ?(?i:AM|PM)$`
	rfidTagPattern     = `^[A-Z0-9]+$`
)

func compilePatterns(b Bounds) Patterns {
	return Patterns{
		StudentNumber: regexp.MustCompile(studentNumberPattern),
		PersonName:    regexp.MustCompile(personNamePattern),
		Email:         regexp.MustCompile(emailPattern),
		Phone:         regexp.MustCompile(fmt.Sprintf(`^\+?\d{%d,%d}$`, b.PhoneDigitsMin, b.PhoneDigitsMax)),
		SubjectCode:   regexp.MustCompile(subjectCodePattern),
		ISODate:       regexp.MustCompile(isoDatePattern),
		Clock12:       regexp.MustCompile(clock12Pattern),
		RFIDTag:       regexp.MustCompile(rfidTagPattern),
	}
}
