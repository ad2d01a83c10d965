package records_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rollcall/pkg/records"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected records.ID
	}{
		{name: "int", input: 42, expected: "42"},
		{name: "int64", input: int64(7), expected: "7"},
		{name: "integral float", input: float64(3), expected: "3"},
		{name: "fractional float", input: 2.5, expected: "2.5"},
		{name: "padded string", input: "  s-1 ", expected: "s-1"},
		{name: "json number", input: json.Number("12"), expected: "12"},
		{name: "nil", input: nil, expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, records.ParseID(tt.input))
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var ids []records.ID
	require.NoError(t, json.Unmarshal([]byte(`[1, "2", " 3 ", 4.0, null]`), &ids))
	assert.Equal(t, []records.ID{"1", "2", "3", "4", ""}, ids)

	var id records.ID
	err := json.Unmarshal([]byte(`{"a":1}`), &id)
	assert.ErrorIs(t, err, records.ErrInvalidID)
}

func TestID_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, records.ID("2").Equal(records.ParseID(2)))
	assert.False(t, records.ID("").Equal(""))
	assert.True(t, records.ID(" ").IsZero())
}

func TestStatuses(t *testing.T) {
	t.Parallel()

	s, ok := records.ParseStudentStatus(" Graduated ")
	require.True(t, ok)
	assert.False(t, s.CanEnroll())
	assert.True(t, records.StudentActive.CanEnroll())
	for _, st := range records.IneligibleStatuses() {
		assert.False(t, st.CanEnroll(), st)
	}

	a, ok := records.ParseAttendanceStatus("LATE")
	require.True(t, ok)
	assert.Equal(t, "Late", a.Label())
	_, ok = records.ParseAttendanceStatus("tardy")
	assert.False(t, ok)

	slot, ok := records.ParseTimeSlot("Departure")
	require.True(t, ok)
	assert.Equal(t, "Departure", slot.Label())

	_, ok = records.ParseUserRole("superuser")
	assert.False(t, ok)
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	d, ok := records.ParseDay("2025-01-15", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), d)

	manila := time.FixedZone("PHT", 8*3600)
	d, ok = records.ParseDay("2025-01-15T20:00:00Z", manila)
	require.True(t, ok)
	assert.Equal(t, 16, d.Day())

	_, ok = records.ParseDay("15/01/2025", time.UTC)
	assert.False(t, ok)
}

func TestSnapshotLookups(t *testing.T) {
	t.Parallel()

	cap30 := 30
	snap := records.Snapshot{
		Students: []records.Student{{ID: "1", StudentNumber: "24-0001"}},
		Subjects: []records.Subject{{ID: "10", Code: "Math-101", Capacity: &cap30, EnrolledCount: 1}},
		Enrollments: []records.Enrollment{
			{ID: "e1", StudentID: "1", SubjectID: "10"},
			{ID: "e2", StudentID: "2", SubjectID: "10"},
		},
		Attendance: []records.Attendance{{ID: "a1", StudentID: "1", SubjectID: "10", Date: "2025-01-15"}},
	}

	st, ok := snap.StudentByNumber(" 24-0001")
	require.True(t, ok)
	assert.Equal(t, records.ID("1"), st.ID)

	sub, ok := snap.SubjectByCode("math-101")
	require.True(t, ok)
	assert.Equal(t, 2, snap.EnrolledCount(sub))

	assert.True(t, snap.IsEnrolled(records.ParseID(1), "10"))
	assert.False(t, snap.IsEnrolled("3", "10"))
	assert.Len(t, snap.EnrollmentsForStudent("1"), 1)
	assert.Len(t, snap.AttendanceForSubject("10"), 1)

	_, ok = snap.Student("99")
	assert.False(t, ok)
}
