package fields

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/sanitizer"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// StudentNumber validates a "YY-NNNN" student number whose two-digit intake
// year lies within the configured window around the current year.
func (v *Validator) StudentNumber(raw string) validator.Result {
	const field = "student_number"
	value := sanitizer.StudentNumber(raw)

	return validator.First(
		validator.Required(field, value),
		validator.Matches(field, value, v.reg.Patterns().StudentNumber, "in the format YY-NNNN").
			WithMessage("Student number must be in the format YY-NNNN (e.g., 24-0001)").
			WithKey("validation.student_number.format", nil),
		v.studentYear(field, value),
	)
}

func (v *Validator) studentYear(field, value string) validator.Rule {
	b := v.reg.Bounds()
	current := v.Now().Year()
	from, to := current-b.StudentYearsBack, current+b.StudentYearsAhead

	return validator.Check(field, validator.KindFormat,
		"validation.student_number.year",
		fmt.Sprintf("Student number year must be between %02d and %02d", from%100, to%100),
		map[string]any{"min": fmt.Sprintf("%02d", from%100), "max": fmt.Sprintf("%02d", to%100)},
		func() bool {
			if len(value) < 2 || !isDigit(value[0]) || !isDigit(value[1]) {
				return false
			}
			yy := int(value[0]-'0')*10 + int(value[1]-'0')
			for y := from; y <= to; y++ {
				if y%100 == yy {
					return true
				}
			}
			return false
		},
	)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// PersonName validates a required first, middle or last name.
func (v *Validator) PersonName(field, raw string) validator.Result {
	value := sanitizer.Name(raw)
	b := v.reg.Bounds()

	return validator.First(
		validator.Required(field, value),
		validator.MinLen(field, value, b.NameMin),
		validator.MaxLen(field, value, b.NameMax),
		validator.Matches(field, value, v.reg.Patterns().PersonName, "letters only").
			WithMessage(validator.Label(field)+" can only contain letters, spaces, hyphens and apostrophes, and must start and end with a letter").
			WithKey("validation.person_name.format", nil),
	)
}

// OptionalPersonName is PersonName for fields that may be left blank.
func (v *Validator) OptionalPersonName(field, raw string) validator.Result {
	if sanitizer.Name(raw) == "" {
		return validator.Pass()
	}
	return v.PersonName(field, raw)
}

// Email validates an address: overall, local-part and domain lengths first,
// then the pattern.
func (v *Validator) Email(raw string) validator.Result {
	const field = "email"
	value := sanitizer.Email(raw)
	b := v.reg.Bounds()
	local, domain, _ := strings.Cut(value, "@")
	invalid := "Please enter a valid email address"

	return validator.First(
		validator.Required(field, value),
		validator.MaxLen(field, value, b.EmailMax),
		validator.Check(field, validator.KindFormat, "validation.email.format", invalid, nil, func() bool {
			return strings.Count(value, "@") == 1 && local != "" && domain != ""
		}),
		validator.Check(field, validator.KindFormat, "validation.email.local_length",
			fmt.Sprintf("The part before @ must be at most %d characters", b.EmailLocalMax),
			map[string]any{"max": b.EmailLocalMax},
			func() bool { return len(local) <= b.EmailLocalMax }),
		validator.Check(field, validator.KindFormat, "validation.email.domain_length",
			fmt.Sprintf("The domain must be at most %d characters", b.EmailDomainMax),
			map[string]any{"max": b.EmailDomainMax},
			func() bool { return len(domain) <= b.EmailDomainMax }),
		validator.Check(field, validator.KindFormat, "validation.email.format", invalid, nil, func() bool {
			return !strings.HasPrefix(local, ".") && !strings.HasSuffix(local, ".") && !strings.Contains(local, "..")
		}),
		validator.Matches(field, value, v.reg.Patterns().Email, "a valid email address").
			WithMessage(invalid).
			WithKey("validation.email.format", nil),
	)
}

// Phone validates an optional phone number of 7 to 15 digits with an optional leading plus.
func (v *Validator) Phone(raw string) validator.Result {
	const field = "phone"
	value := sanitizer.Phone(raw)
	if value == "" {
		return validator.Pass()
	}
	b := v.reg.Bounds()
	return validator.First(
		validator.Matches(field, value, v.reg.Patterns().Phone, "a valid phone number").
			WithMessage(fmt.Sprintf("Phone number must contain %d to %d digits", b.PhoneDigitsMin, b.PhoneDigitsMax)).
			WithKey("validation.phone.format", map[string]any{"min": b.PhoneDigitsMin, "max": b.PhoneDigitsMax}),
	)
}

// Age validates a declared age.
func (v *Validator) Age(age int) validator.Result {
	b := v.reg.Bounds()
	return validator.First(validator.Between("age", age, b.AgeMin, b.AgeMax))
}

// Birthdate validates an ISO birthdate that is a real calendar day, not in
// the future, and implies an age within bounds.
func (v *Validator) Birthdate(raw string) validator.Result {
	const field = "birthdate"
	value := sanitizer.Trim(raw)
	b := v.reg.Bounds()
	now := v.Now()
	day, err := validator.ParseDate(value, now.Location())

	return validator.First(
		validator.Required(field, value),
		validator.Matches(field, value, v.reg.Patterns().ISODate, "in the format YYYY-MM-DD").
			WithKey("validation.date.format", nil),
		validator.Check(field, validator.KindFormat, "validation.date.invalid",
			"Birthdate is not a valid calendar date", nil,
			func() bool { return err == nil }),
		validator.NotAfterDay(field, day, now).WithMessage("Birthdate cannot be in the future"),
		validator.AgeBetween(field, day, now, b.AgeMin, b.AgeMax),
	)
}

// RFIDTag validates an optional hardware tag identifier.
func (v *Validator) RFIDTag(raw string) validator.Result {
	const field = "rfid_tag"
	value := sanitizer.Identifier(raw)
	if value == "" {
		return validator.Pass()
	}
	b := v.reg.Bounds()
	return validator.First(
		validator.MinLen(field, value, b.RFIDTagMin),
		validator.MaxLen(field, value, b.RFIDTagMax),
		validator.Matches(field, value, v.reg.Patterns().RFIDTag, "letters and digits only").
			WithMessage("RFID tag can only contain letters and digits").
			WithKey("validation.rfid_tag.format", nil),
	)
}

// StudentStatus validates a student lifecycle status, ignoring case.
func (v *Validator) StudentStatus(raw string) validator.Result {
	const field = "status"
	status, _ := records.ParseStudentStatus(raw)
	return validator.First(
		validator.Required(field, raw),
		validator.OneOf(field, status, records.StudentStatuses()),
	)
}
