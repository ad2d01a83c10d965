package sanitizer

// Email trims and lower-cases an address for comparison and matching.
func Email(s string) string {
	return Lower(Trim(s))
}

// Identifier trims and upper-cases codes such as subject codes and RFID tags.
func Identifier(s string) string {
	return Upper(Trim(s))
}

// StudentNumber removes whitespace from a "YY-NNNN" identifier.
func StudentNumber(s string) string {
	return RemoveWhitespace(s)
}

// Name cleans a person or subject name.
func Name(s string) string {
	return Clean(s)
}

// Phone strips spaces, dots, dashes and parentheses and keeps a leading plus.
func Phone(s string) string {
	return phoneSeparatorRegex.ReplaceAllString(Trim(s), "")
}

// SearchTerm cleans free text typed into a search box.
func SearchTerm(s string) string {
	return Clean(s)
}
