package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO calendar date layout accepted everywhere in rollcall.
	DateLayout = "2006-01-02"
	// ClockLayout is the 12-hour clock layout used for attendance times.
	ClockLayout = "03:04 PM"
)

// ParseDate parses an ISO calendar date at midnight in loc.
// Impossible dates such as 2023-02-30 are rejected.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidDate, err)
	}
	return t, nil
}

// ParseClock parses "HH:MM AM/PM". A single-digit hour and lowercase meridiem are accepted.
func ParseClock(value string) (time.Time, error) {
	v := strings.ToUpper(strings.TrimSpace(value))
	if !strings.Contains(v, " ") && len(v) > 2 {
		// "08:30AM"
		v = v[:len(v)-2] + " " + v[len(v)-2:]
	}
	for _, layout := range []string{ClockLayout, "3:04 PM"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, value)
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc != nil {
		a, b = a.In(loc), b.In(loc)
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AgeOn returns the number of whole years between birth and at, counting a
// birthday only once its month and day have been reached.
func AgeOn(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() ||
		(at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}

// NotAfterDay validates that value does not fall on a calendar day later than limit.
func NotAfterDay(field string, value, limit time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !Day(value).After(Day(limit.In(value.Location())))
		},
		Error: ValidationError{
			Field:          field,
			Message:        Label(field) + " cannot be in the future",
			Kind:           KindTemporal,
			TranslationKey: "validation.date_future",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// AgeBetween validates that the age implied by birth on at lies in [min, max].
func AgeBetween(field string, birth, at time.Time, min, max int) Rule {
	return Rule{
		Check: func() bool {
			age := AgeOn(birth, at)
			return age >= min && age <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must correspond to an age between %d and %d", Label(field), min, max),
			Kind:           KindRange,
			TranslationKey: "validation.age_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
