package business

import (
	"fmt"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/sanitizer"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// StudentNumberUnique rejects a student number already held by another student.
func (v *Validator) StudentNumberUnique(number string, students []records.Student, excludeID records.ID) validator.Result {
	return unique("student_number", sanitizer.StudentNumber(number), students, excludeID,
		func(s records.Student) (records.ID, string) { return s.ID, sanitizer.StudentNumber(s.StudentNumber) },
		"Student number %s is already assigned to another student")
}

// StudentEmailUnique rejects an email already used by another student.
func (v *Validator) StudentEmailUnique(email string, students []records.Student, excludeID records.ID) validator.Result {
	return unique("email", sanitizer.Email(email), students, excludeID,
		func(s records.Student) (records.ID, string) { return s.ID, sanitizer.Email(s.Email) },
		"Email %s is already used by another student")
}

// RFIDTagUnique rejects a tag already registered to another student.
// An empty tag is always unique.
func (v *Validator) RFIDTagUnique(tag string, students []records.Student, excludeID records.ID) validator.Result {
	return unique("rfid_tag", sanitizer.Identifier(tag), students, excludeID,
		func(s records.Student) (records.ID, string) { return s.ID, sanitizer.Identifier(s.RFIDTag) },
		"RFID tag %s is already registered to another student")
}

// SubjectCodeUnique rejects a subject code already in use, ignoring case.
func (v *Validator) SubjectCodeUnique(code string, subjects []records.Subject, excludeID records.ID) validator.Result {
	return unique("code", sanitizer.Identifier(code), subjects, excludeID,
		func(s records.Subject) (records.ID, string) { return s.ID, sanitizer.Identifier(s.Code) },
		"Subject code %s is already in use")
}

// UserEmailUnique rejects an email already used by another console user.
func (v *Validator) UserEmailUnique(email string, users []records.User, excludeID records.ID) validator.Result {
	return unique("email", sanitizer.Email(email), users, excludeID,
		func(u records.User) (records.ID, string) { return u.ID, sanitizer.Email(u.Email) },
		"Email %s is already used by another user")
}

// unique scans items for a normalized value equal to want, skipping the
// record identified by excludeID. An empty want never conflicts.
func unique[T any](field, want string, items []T, excludeID records.ID, key func(T) (records.ID, string), format string) validator.Result {
	if want == "" {
		return validator.Pass()
	}
	for _, item := range items {
		id, got := key(item)
		if id.Equal(excludeID) {
			continue
		}
		if got == want {
			return validator.Fail(validator.KindUniqueness, "business.unique."+field,
				fmt.Sprintf(format, want),
				map[string]any{"field": field, "value": want, "conflict_id": id.String()})
		}
	}
	return validator.Pass()
}
