package deletion

import (
	"fmt"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// related is one referencing collection and the phrase used to describe it.
type related struct {
	count int
	noun  string
}

// Student reports whether the student identified by id can be deleted.
func Student(id records.ID, enrollments []records.Enrollment, attendance []records.Attendance) validator.DeletionCheck {
	return guard("student", "deletion.student.blocked",
		related{count(enrollments, func(e records.Enrollment) bool { return e.StudentID.Equal(id) }), "subject enrollment(s)"},
		related{count(attendance, func(a records.Attendance) bool { return a.StudentID.Equal(id) }), "attendance record(s)"},
	)
}

// Subject reports whether the subject identified by id can be deleted.
func Subject(id records.ID, enrollments []records.Enrollment, attendance []records.Attendance) validator.DeletionCheck {
	return guard("subject", "deletion.subject.blocked",
		related{count(enrollments, func(e records.Enrollment) bool { return e.SubjectID.Equal(id) }), "enrolled student(s)"},
		related{count(attendance, func(a records.Attendance) bool { return a.SubjectID.Equal(id) }), "attendance record(s)"},
	)
}

// UserReferences are the records that may have been authored by a console user.
type UserReferences struct {
	Students    []records.Student
	Subjects    []records.Subject
	Enrollments []records.Enrollment
	Attendance  []records.Attendance
}

// UserReferencesFrom collects the authored-record collections of a snapshot.
func UserReferencesFrom(snap records.Snapshot) UserReferences {
	return UserReferences{
		Students:    snap.Students,
		Subjects:    snap.Subjects,
		Enrollments: snap.Enrollments,
		Attendance:  snap.Attendance,
	}
}

// User reports whether the console user identified by id can be deleted.
// A user who created or marked any extant record cannot be.
func User(id records.ID, refs UserReferences) validator.DeletionCheck {
	return guard("user", "deletion.user.blocked",
		related{count(refs.Students, func(s records.Student) bool { return s.CreatedBy.Equal(id) }), "student record(s)"},
		related{count(refs.Subjects, func(s records.Subject) bool { return s.CreatedBy.Equal(id) }), "subject record(s)"},
		related{count(refs.Enrollments, func(e records.Enrollment) bool { return e.CreatedBy.Equal(id) }), "enrollment record(s)"},
		related{count(refs.Attendance, func(a records.Attendance) bool { return a.MarkedBy.Equal(id) }), "attendance record(s)"},
	)
}

func guard(entity, key string, rel ...related) validator.DeletionCheck {
	var (
		list   []string
		params = map[string]any{"entity": entity}
	)
	for _, r := range rel {
		if r.count == 0 {
			continue
		}
		list = append(list, fmt.Sprintf("%d %s", r.count, r.noun))
	}
	if len(list) == 0 {
		return validator.Allowed()
	}
	params["related"] = len(list)

	reason := fmt.Sprintf("Cannot delete this %s because it has related records. Consider deactivating the %s instead.", entity, entity)
	if entity == "user" {
		reason = "Cannot delete this user because they created records that still exist. Consider deactivating the account instead."
	}
	return validator.Blocked(key, reason, list, params)
}

func count[T any](items []T, match func(T) bool) int {
	n := 0
	for _, item := range items {
		if match(item) {
			n++
		}
	}
	return n
}
