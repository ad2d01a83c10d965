package fields_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rollcall/pkg/fields"
	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

var fixedNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func newValidator() *fields.Validator {
	reg := registry.New(registry.WithLocation(time.UTC))
	return fields.New(reg, fields.WithClock(func() time.Time { return fixedNow }))
}

func TestStudentNumber(t *testing.T) {
	t.Parallel()
	v := newValidator()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "canonical", input: "24-0001", valid: true},
		{name: "surrounding spaces", input: " 24-0001 ", valid: true},
		{name: "next year intake", input: "26-0100", valid: true},
		{name: "ten years back", input: "15-1234", valid: true},
		{name: "single digit year", input: "1-001", valid: false},
		{name: "four digit year", input: "2024-0001", valid: false},
		{name: "short sequence", input: "24-01", valid: false},
		{name: "too far back", input: "14-0001", valid: false},
		{name: "too far ahead", input: "27-0001", valid: false},
		{name: "letters", input: "AB-CDEF", valid: false},
		{name: "empty", input: "", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.StudentNumber(tt.input)
			assert.Equal(t, tt.valid, res.Valid, res.Error)
			if !tt.valid {
				assert.NotEmpty(t, res.Error)
				assert.Equal(t, validator.KindFormat, res.Kind)
			}
		})
	}

	t.Run("implausible year message names the window", func(t *testing.T) {
		res := v.StudentNumber("99-0001")
		assert.Equal(t, "Student number year must be between 15 and 26", res.Error)
	})

	t.Run("window wraps around the century", func(t *testing.T) {
		v := fields.New(registry.New(), fields.WithClock(func() time.Time {
			return time.Date(2099, 3, 1, 0, 0, 0, 0, time.UTC)
		}))
		assert.True(t, v.StudentNumber("00-0001").Valid)
		assert.True(t, v.StudentNumber("89-0001").Valid)
		assert.False(t, v.StudentNumber("88-0001").Valid)
	})
}

func TestPersonName(t *testing.T) {
	t.Parallel()
	v := newValidator()

	valid := []string{"Ana", "María José", "O'Brien", "Jean-Luc", "Zoë", "  Juan   ", "Ng"}
	for _, name := range valid {
		assert.True(t, v.PersonName("first_name", name).Valid, name)
	}

	invalid := map[string]string{
		"":                      "First name is required",
		"A":                     "First name must be at least 2 characters",
		strings.Repeat("a", 51): "First name must be at most 50 characters",
		"-Ana":                  "First name can only contain letters, spaces, hyphens and apostrophes, and must start and end with a letter",
		"Ana'":                  "First name can only contain letters, spaces, hyphens and apostrophes, and must start and end with a letter",
		"Ana3":                  "First name can only contain letters, spaces, hyphens and apostrophes, and must start and end with a letter",
	}
	for input, msg := range invalid {
		res := v.PersonName("first_name", input)
		assert.False(t, res.Valid, input)
		assert.Equal(t, msg, res.Error, input)
	}

	assert.True(t, v.OptionalPersonName("middle_name", "  ").Valid)
	assert.False(t, v.OptionalPersonName("middle_name", "X").Valid)
}

func TestEmail(t *testing.T) {
	t.Parallel()
	v := newValidator()

	assert.True(t, v.Email("Ana.Cruz@School.edu.ph").Valid)

	tests := []struct {
		name  string
		input string
		key   string
	}{
		{name: "empty", input: "", key: "validation.required"},
		{name: "missing at", input: "ana.school.edu", key: "validation.email.format"},
		{name: "two ats", input: "a@b@c.edu", key: "validation.email.format"},
		{name: "long local part", input: strings.Repeat("a", 65) + "@school.edu", key: "validation.email.local_length"},
		{name: "too long overall", input: strings.Repeat("a", 60) + "@" + strings.Repeat("b", 200) + ".edu", key: "validation.max_length"},
		{name: "double dot", input: "ana..cruz@school.edu", key: "validation.email.format"},
		{name: "no tld", input: "ana@localhost", key: "validation.email.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Email(tt.input)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.key, res.Key)
		})
	}
}

func TestAgeAndBirthdate(t *testing.T) {
	t.Parallel()
	v := newValidator()

	assert.True(t, v.Age(3).Valid)
	assert.True(t, v.Age(100).Valid)
	assert.False(t, v.Age(2).Valid)
	res := v.Age(101)
	assert.Equal(t, validator.KindRange, res.Kind)
	assert.Equal(t, "Age must be between 3 and 100", res.Error)

	assert.True(t, v.Birthdate("2005-06-15").Valid)

	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{name: "empty", input: "", msg: "Birthdate is required"},
		{name: "wrong layout", input: "06/15/2005", msg: "Birthdate must be in the format YYYY-MM-DD"},
		{name: "impossible day", input: "2005-02-30", msg: "Birthdate is not a valid calendar date"},
		{name: "future", input: "2025-06-16", msg: "Birthdate cannot be in the future"},
		{name: "too young", input: "2023-01-01", msg: "Birthdate must correspond to an age between 3 and 100"},
		{name: "too old", input: "1900-01-01", msg: "Birthdate must correspond to an age between 3 and 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Birthdate(tt.input)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.msg, res.Error)
		})
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()
	v := newValidator()

	assert.True(t, v.Password("Attend4nce!").Valid)

	tests := []struct {
		name  string
		input string
		key   string
	}{
		{name: "empty", input: "", key: "validation.required"},
		{name: "common despite composition", input: "Password123", key: "validation.password.common"},
		{name: "short", input: "Ab1", key: "validation.min_length"},
		{name: "long", input: "Ab1" + strings.Repeat("x", 126), key: "validation.max_length"},
		{name: "no lowercase", input: "ABCDEFG1", key: "validation.password.lowercase"},
		{name: "no uppercase", input: "abcdefg1", key: "validation.password.uppercase"},
		{name: "no digit", input: "Abcdefgh", key: "validation.password.digit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Password(tt.input)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.key, res.Key)
		})
	}
}

func TestSubjectFields(t *testing.T) {
	t.Parallel()
	v := newValidator()

	for _, code := range []string{"MATH-101", "cs1", "AB", strings.Repeat("A", 20)} {
		assert.True(t, v.SubjectCode(code).Valid, code)
	}
	for _, code := range []string{"", "A", strings.Repeat("A", 21), "MATH 101", "MATH_101"} {
		assert.False(t, v.SubjectCode(code).Valid, code)
	}

	assert.True(t, v.SubjectName("General Science").Valid)
	assert.False(t, v.SubjectName("<b></b>").Valid)

	assert.True(t, v.Capacity(500).Valid)
	assert.True(t, v.Capacity(1).Valid)
	assert.False(t, v.Capacity(501).Valid)
	assert.False(t, v.Capacity(0).Valid)
	assert.Equal(t, validator.KindRange, v.Capacity(0).Kind)
}

func TestAttendanceFields(t *testing.T) {
	t.Parallel()
	v := newValidator()

	assert.True(t, v.AttendanceStatus("PRESENT").Valid)
	assert.False(t, v.AttendanceStatus("tardy").Valid)
	assert.False(t, v.AttendanceStatus("").Valid)

	assert.True(t, v.TimeSlot("Arrival").Valid)
	assert.False(t, v.TimeSlot("lunch").Valid)

	assert.True(t, v.Date("date", "2025-01-15").Valid)
	assert.False(t, v.Date("date", "2025-13-01").Valid)

	assert.True(t, v.Time("time", "08:30 AM").Valid)
	assert.True(t, v.Time("time", "4:05 pm").Valid)
	assert.False(t, v.Time("time", "16:05").Valid)

	assert.True(t, v.Notes(strings.Repeat("n", 500)).Valid)
	assert.False(t, v.Notes(strings.Repeat("n", 501)).Valid)
}

func TestOptionalIdentifiers(t *testing.T) {
	t.Parallel()
	v := newValidator()

	assert.True(t, v.Phone("").Valid)
	assert.True(t, v.Phone("+63 917 123 4567").Valid)
	assert.False(t, v.Phone("12-34").Valid)

	assert.True(t, v.RFIDTag("").Valid)
	assert.True(t, v.RFIDTag("04a1b2c3").Valid)
	assert.False(t, v.RFIDTag("04:A1").Valid)

	assert.True(t, v.StudentStatus("Active").Valid)
	assert.False(t, v.StudentStatus("expelled").Valid)

	assert.True(t, v.UserRole("Teacher").Valid)
	assert.False(t, v.UserRole("root").Valid)
}

func TestFile(t *testing.T) {
	t.Parallel()
	v := newValidator()

	assert.True(t, v.File(registry.CategoryProfilePhoto, 5*registry.MB, "image/png").Valid)
	assert.True(t, v.File(registry.CategorySpreadsheet, 1024, "text/csv; charset=utf-8").Valid)

	res := v.File(registry.CategoryProfilePhoto, 5*registry.MB+1, "image/png")
	assert.False(t, res.Valid)
	assert.Equal(t, "File size must not exceed 5MB", res.Error)

	res = v.File(registry.CategoryDocument, 10, "application/x-msdownload")
	assert.False(t, res.Valid)
	assert.Equal(t, "validation.file.type", res.Key)

	assert.False(t, v.File(registry.CategorySpreadsheet, 0, registry.MIMEXLSX).Valid)
	assert.False(t, v.File("video", 10, "video/mp4").Valid)
}

func TestSearchTerm(t *testing.T) {
	t.Parallel()
	v := newValidator()

	assert.True(t, v.SearchTerm("").Valid)
	assert.True(t, v.SearchTerm("  dela   cruz ").Valid)
	assert.False(t, v.SearchTerm(strings.Repeat("q", 101)).Valid)
}

func TestDeterminism(t *testing.T) {
	t.Parallel()
	v := newValidator()

	inputs := []string{"24-0001", "1-001", "", "Ana", "x@y.z"}
	for _, in := range inputs {
		first := []validator.Result{v.StudentNumber(in), v.PersonName("name", in), v.Email(in)}
		for range 3 {
			again := []validator.Result{v.StudentNumber(in), v.PersonName("name", in), v.Email(in)}
			assert.Equal(t, first, again, in)
		}
	}
}
