package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rollcall/pkg/validator"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeOn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		birth    time.Time
		at       time.Time
		expected int
	}{
		{name: "birthday already passed", birth: date(2005, 3, 10), at: date(2025, 6, 1), expected: 20},
		{name: "birthday today", birth: date(2005, 6, 1), at: date(2025, 6, 1), expected: 20},
		{name: "birthday tomorrow", birth: date(2005, 6, 2), at: date(2025, 6, 1), expected: 19},
		{name: "later month", birth: date(2005, 12, 1), at: date(2025, 6, 1), expected: 19},
		{name: "leap day in common year", birth: date(2004, 2, 29), at: date(2025, 2, 28), expected: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.AgeOn(tt.birth, tt.at))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := validator.ParseDate(" 2025-01-15 ", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 1, 15), d)

	for _, bad := range []string{"", "2025-1-15", "15/01/2025", "2023-02-30", "garbage"} {
		_, err := validator.ParseDate(bad, time.UTC)
		assert.ErrorIs(t, err, validator.ErrInvalidDate, bad)
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"08:30 AM", "8:30 AM", "12:05 pm", "07:45PM"} {
		_, err := validator.ParseClock(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "13:00 PM", "8:30", "noon"} {
		_, err := validator.ParseClock(bad)
		assert.ErrorIs(t, err, validator.ErrInvalidTime, bad)
	}
}

func TestNotAfterDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.True(t, validator.NotAfterDay("date", date(2025, 1, 15), now).Check())
	assert.True(t, validator.NotAfterDay("date", date(2024, 12, 31), now).Check())

	rule := validator.NotAfterDay("date", date(2025, 1, 16), now)
	assert.False(t, rule.Check())
	assert.Equal(t, validator.KindTemporal, rule.Error.Kind)
}

func TestAgeBetween(t *testing.T) {
	t.Parallel()

	now := date(2025, 6, 1)
	assert.True(t, validator.AgeBetween("birthdate", date(2005, 1, 1), now, 3, 100).Check())
	assert.False(t, validator.AgeBetween("birthdate", date(2023, 1, 1), now, 3, 100).Check())
	assert.False(t, validator.AgeBetween("birthdate", date(1900, 1, 1), now, 3, 100).Check())
}
