package forms

import (
	"strings"

	"github.com/dmitrymomot/rollcall/pkg/business"
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Attendance validates a single attendance mark. The subject is optional for
// daily attendance; when given it must exist and, if the snapshot carries
// enrollments, the student must be enrolled in it.
func (v *Validator) Attendance(in records.AttendanceInput, snap records.Snapshot, isUpdate bool) validator.FormResult {
	res := validator.NewFormResult()

	res.Add("id", recordID(in.ID, isUpdate))
	res.Add("status", v.fields.AttendanceStatus(in.Status))
	slotOK := res.Add("time_slot", v.fields.TimeSlot(in.TimeSlot))
	dateOK := res.Add("date", v.fields.Date("date", in.Date))
	if strings.TrimSpace(in.Time) != "" {
		res.Add("time", v.fields.Time("time", in.Time))
	}
	res.Add("notes", v.fields.Notes(in.Notes))

	_, studentFound := snap.Student(in.StudentID)
	studentOK := res.Add("student_id", reference("student_id", "Student", in.StudentID, studentFound))
	subjectOK := true
	if !in.SubjectID.IsZero() {
		_, subjectFound := snap.Subject(in.SubjectID)
		subjectOK = res.Add("subject_id", reference("subject_id", "Subject", in.SubjectID, subjectFound))
		if studentOK && subjectOK && len(snap.Enrollments) > 0 && !snap.IsEnrolled(in.StudentID, in.SubjectID) {
			res.Add("subject_id", validator.Fail(validator.KindReferentialIntegrity, "business.attendance.not_enrolled",
				"Student is not enrolled in this subject", map[string]any{"field": "subject_id"}))
		}
	}

	if dateOK {
		res.Add("date", v.rules.AttendanceDate(in.Date, isUpdate))
	}
	if in.MarkedAt != nil {
		res.Add("time", v.rules.AttendanceTimestamp(*in.MarkedAt))
	}
	if dateOK && slotOK && studentOK && subjectOK {
		slot, _ := records.ParseTimeSlot(in.TimeSlot)
		key := business.AttendanceKey{
			StudentID: in.StudentID,
			SubjectID: in.SubjectID,
			Date:      in.Date,
			TimeSlot:  slot,
		}
		res.Add("date", v.rules.DuplicateAttendance(key, snap.Attendance, excluded(in.ID, isUpdate)))
	}
	return res
}
