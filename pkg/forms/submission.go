package forms

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Submission kinds.
const (
	KindStudent    = "student"
	KindSubject    = "subject"
	KindEnrollment = "enrollment"
	KindAttendance = "attendance"
	KindUser       = "user"
)

// Submission is a proposed entity change. The set of implementations is
// closed: StudentSubmission, SubjectSubmission, EnrollmentSubmission,
// AttendanceSubmission and UserSubmission.
type Submission interface {
	Kind() string
	validate(v *Validator, snap records.Snapshot) validator.FormResult
}

type StudentSubmission struct {
	Input    records.StudentInput
	IsUpdate bool
}

func (StudentSubmission) Kind() string { return KindStudent }

func (s StudentSubmission) validate(v *Validator, snap records.Snapshot) validator.FormResult {
	return v.Student(s.Input, snap, s.IsUpdate)
}

type SubjectSubmission struct {
	Input    records.SubjectInput
	IsUpdate bool
}

func (SubjectSubmission) Kind() string { return KindSubject }

func (s SubjectSubmission) validate(v *Validator, snap records.Snapshot) validator.FormResult {
	return v.Subject(s.Input, snap, s.IsUpdate)
}

type EnrollmentSubmission struct {
	Input records.EnrollmentInput
}

func (EnrollmentSubmission) Kind() string { return KindEnrollment }

func (s EnrollmentSubmission) validate(v *Validator, snap records.Snapshot) validator.FormResult {
	return v.Enrollment(s.Input, snap)
}

type AttendanceSubmission struct {
	Input    records.AttendanceInput
	IsUpdate bool
}

func (AttendanceSubmission) Kind() string { return KindAttendance }

func (s AttendanceSubmission) validate(v *Validator, snap records.Snapshot) validator.FormResult {
	return v.Attendance(s.Input, snap, s.IsUpdate)
}

type UserSubmission struct {
	Input    records.UserInput
	IsUpdate bool
}

func (UserSubmission) Kind() string { return KindUser }

func (s UserSubmission) validate(v *Validator, snap records.Snapshot) validator.FormResult {
	return v.User(s.Input, snap, s.IsUpdate)
}

// Validate dispatches sub to the matching composite validator.
// A nil submission yields a failing report rather than a panic.
func (v *Validator) Validate(sub Submission, snap records.Snapshot) validator.FormResult {
	if sub == nil {
		res := validator.NewFormResult()
		res.Add("submission", validator.Fail(validator.KindFormat, "validation.submission.missing",
			"Submission is required", map[string]any{"field": "submission"}))
		return res
	}
	return sub.validate(v, snap)
}

// NewSubmission decodes a JSON payload into the submission named by kind.
// An empty payload decodes to a zero input.
func NewSubmission(kind string, data []byte, isUpdate bool) (Submission, error) {
	switch kind {
	case KindStudent:
		return decodeInto(data, func(in records.StudentInput) Submission {
			return StudentSubmission{Input: in, IsUpdate: isUpdate}
		})
	case KindSubject:
		return decodeInto(data, func(in records.SubjectInput) Submission {
			return SubjectSubmission{Input: in, IsUpdate: isUpdate}
		})
	case KindEnrollment:
		return decodeInto(data, func(in records.EnrollmentInput) Submission {
			return EnrollmentSubmission{Input: in}
		})
	case KindAttendance:
		return decodeInto(data, func(in records.AttendanceInput) Submission {
			return AttendanceSubmission{Input: in, IsUpdate: isUpdate}
		})
	case KindUser:
		return decodeInto(data, func(in records.UserInput) Submission {
			return UserSubmission{Input: in, IsUpdate: isUpdate}
		})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSubmission, kind)
}

func decodeInto[T any](data []byte, wrap func(T) Submission) (Submission, error) {
	var in T
	data = bytes.TrimSpace(data)
	if len(data) > 0 && !bytes.Equal(data, []byte("null")) {
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, errors.Join(ErrInvalidSubmission, err)
		}
	}
	return wrap(in), nil
}
