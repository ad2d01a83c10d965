package registry

import "strings"

// defaultCommonPasswords is the deny-list applied regardless of composition.
// Entries are lowercase.
func defaultCommonPasswords() map[string]struct{} {
	list := []string{
		"password", "password1", "password12", "password123", "password1234",
		"passw0rd", "p@ssw0rd", "12345678", "123456789", "1234567890",
		"qwerty123", "qwertyuiop", "qwerty12", "abc12345", "abcd1234",
		"letmein1", "welcome1", "welcome123", "admin123", "administrator",
		"iloveyou1", "sunshine1", "princess1", "football1", "baseball1",
		"monkey123", "dragon123", "master123", "changeme", "changeme1",
		"trustno1", "11111111", "00000000", "student1", "student123",
		"teacher1", "teacher123", "school123", "attendance1",
	}
	m := make(map[string]struct{}, len(list))
	for _, p := range list {
		m[strings.ToLower(p)] = struct{}{}
	}
	return m
}
