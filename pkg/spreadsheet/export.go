package spreadsheet

import (
	"strings"
	"time"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Export joins attendance records to their students and subjects. Status is
// capitalized, dates are rendered as YYYY-MM-DD and times as HH:MM AM/PM.
// Values that cannot be parsed are passed through unchanged.
func Export(attendance []records.Attendance, snap records.Snapshot) []Row {
	rows := make([]Row, 0, len(attendance))
	for i, a := range attendance {
		row := Row{
			Number:   i + 1,
			Status:   records.AttendanceStatus(strings.ToLower(string(a.Status))).Label(),
			TimeSlot: string(a.TimeSlot),
			Date:     exportDate(a.Date),
			Time:     exportTime(a.Time),
			Notes:    a.Notes,
		}
		if s, ok := snap.Student(a.StudentID); ok {
			row.StudentNumber = s.StudentNumber
			row.FirstName = s.FirstName
			row.LastName = s.LastName
			row.Email = s.Email
		}
		if sub, ok := snap.Subject(a.SubjectID); ok {
			row.SubjectCode = sub.Code
			row.SubjectName = sub.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// exportDate keeps the calendar day of a timestamp in its own offset.
func exportDate(v string) string {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(validator.DateLayout, v); err == nil {
		return t.Format(validator.DateLayout)
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.Format(validator.DateLayout)
	}
	return v
}

func exportTime(v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	if t, err := validator.ParseClock(v); err == nil {
		return t.Format(validator.ClockLayout)
	}
	return v
}
