package forms

import (
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Enrollment validates enrolling a student in a subject: both must exist, the
// student must be eligible, not already enrolled, and the subject must have a
// free seat.
func (v *Validator) Enrollment(in records.EnrollmentInput, snap records.Snapshot) validator.FormResult {
	res := validator.NewFormResult()

	student, studentFound := snap.Student(in.StudentID)
	subject, subjectFound := snap.Subject(in.SubjectID)
	studentOK := res.Add("student_id", reference("student_id", "Student", in.StudentID, studentFound))
	subjectOK := res.Add("subject_id", reference("subject_id", "Subject", in.SubjectID, subjectFound))

	if studentOK {
		res.Add("student_id", v.rules.EnrollmentEligibility(student.Status))
	}
	if studentOK && subjectOK {
		res.Add("subject_id", v.rules.DuplicateEnrollment(in.StudentID, in.SubjectID, snap.Enrollments, in.ID))
		res.Add("subject_id", v.rules.EnrollmentCapacity(subject.Capacity, snap.EnrolledCount(subject), seatsRequested(in, snap)))
	}
	return res
}

// seatsRequested is zero when an existing enrollment is re-saved into the
// subject it already occupies.
func seatsRequested(in records.EnrollmentInput, snap records.Snapshot) int {
	if in.ID.IsZero() {
		return 1
	}
	for _, e := range snap.Enrollments {
		if e.ID.Equal(in.ID) && e.SubjectID.Equal(in.SubjectID) {
			return 0
		}
	}
	return 1
}
