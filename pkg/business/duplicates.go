package business

import (
	"strings"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// AttendanceKey identifies a proposed attendance mark for duplicate detection.
// Which of SubjectID and TimeSlot take part is decided by the registry policy.
type AttendanceKey struct {
	StudentID records.ID
	SubjectID records.ID
	Date      string
	TimeSlot  records.TimeSlot
}

// DuplicateAttendance rejects a mark that collides with an existing record on
// student and calendar date, plus subject and time slot when the policy keys
// on them. The record identified by excludeID is ignored.
func (v *Validator) DuplicateAttendance(proposed AttendanceKey, existing []records.Attendance, excludeID records.ID) validator.Result {
	loc := v.reg.Location()
	day, ok := records.ParseDay(proposed.Date, loc)
	if !ok || proposed.StudentID.IsZero() {
		return validator.Pass()
	}
	key := v.reg.Policy().DuplicateKey
	slot := normalizeSlot(proposed.TimeSlot)

	for _, a := range existing {
		if a.ID.Equal(excludeID) || !a.StudentID.Equal(proposed.StudentID) {
			continue
		}
		other, ok := records.ParseDay(a.Date, loc)
		if !ok || !other.Equal(day) {
			continue
		}
		if key.Subject && a.SubjectID.String() != proposed.SubjectID.String() {
			continue
		}
		if key.TimeSlot && normalizeSlot(a.TimeSlot) != slot {
			continue
		}

		date := day.Format(validator.DateLayout)
		msg := "Attendance for this student on " + date
		if key.Subject && !proposed.SubjectID.IsZero() {
			msg += " in this subject"
		}
		if key.TimeSlot && slot != "" {
			msg += " (" + string(slot) + ")"
		}
		return validator.Fail(validator.KindUniqueness, "business.attendance.duplicate",
			msg+" has already been recorded",
			map[string]any{"field": "date", "date": date, "time_slot": string(slot), "conflict_id": a.ID.String()})
	}
	return validator.Pass()
}

// DuplicateEnrollment rejects enrolling a student in a subject twice.
func (v *Validator) DuplicateEnrollment(studentID, subjectID records.ID, enrollments []records.Enrollment, excludeID records.ID) validator.Result {
	for _, e := range enrollments {
		if e.ID.Equal(excludeID) {
			continue
		}
		if e.StudentID.Equal(studentID) && e.SubjectID.Equal(subjectID) {
			return validator.Fail(validator.KindUniqueness, "business.enrollment.duplicate",
				"Student is already enrolled in this subject",
				map[string]any{"field": "subject_id", "conflict_id": e.ID.String()})
		}
	}
	return validator.Pass()
}

func normalizeSlot(s records.TimeSlot) records.TimeSlot {
	return records.TimeSlot(strings.ToLower(strings.TrimSpace(string(s))))
}
