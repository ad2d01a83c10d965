package records

import "github.com/dmitrymomot/rollcall/pkg/sanitizer"

// Snapshot is the caller-supplied, point-in-time view of existing records a
// business rule is checked against. It is read, never retained.
type Snapshot struct {
	Students    []Student    `json:"students,omitempty"`
	Subjects    []Subject    `json:"subjects,omitempty"`
	Enrollments []Enrollment `json:"enrollments,omitempty"`
	Attendance  []Attendance `json:"attendance,omitempty"`
	Users       []User       `json:"users,omitempty"`
}

func (s Snapshot) Student(id ID) (Student, bool) {
	for _, st := range s.Students {
		if st.ID.Equal(id) {
			return st, true
		}
	}
	return Student{}, false
}

// StudentByNumber finds a student by normalized student number.
func (s Snapshot) StudentByNumber(number string) (Student, bool) {
	want := sanitizer.StudentNumber(number)
	if want == "" {
		return Student{}, false
	}
	for _, st := range s.Students {
		if sanitizer.StudentNumber(st.StudentNumber) == want {
			return st, true
		}
	}
	return Student{}, false
}

func (s Snapshot) Subject(id ID) (Subject, bool) {
	for _, sub := range s.Subjects {
		if sub.ID.Equal(id) {
			return sub, true
		}
	}
	return Subject{}, false
}

// SubjectByCode finds a subject by code, ignoring case.
func (s Snapshot) SubjectByCode(code string) (Subject, bool) {
	want := sanitizer.Identifier(code)
	if want == "" {
		return Subject{}, false
	}
	for _, sub := range s.Subjects {
		if sanitizer.Identifier(sub.Code) == want {
			return sub, true
		}
	}
	return Subject{}, false
}

func (s Snapshot) EnrollmentsForStudent(id ID) []Enrollment {
	return filter(s.Enrollments, func(e Enrollment) bool { return e.StudentID.Equal(id) })
}

func (s Snapshot) EnrollmentsForSubject(id ID) []Enrollment {
	return filter(s.Enrollments, func(e Enrollment) bool { return e.SubjectID.Equal(id) })
}

func (s Snapshot) AttendanceForStudent(id ID) []Attendance {
	return filter(s.Attendance, func(a Attendance) bool { return a.StudentID.Equal(id) })
}

func (s Snapshot) AttendanceForSubject(id ID) []Attendance {
	return filter(s.Attendance, func(a Attendance) bool { return a.SubjectID.Equal(id) })
}

// IsEnrolled reports whether the snapshot holds an enrollment of student in subject.
func (s Snapshot) IsEnrolled(studentID, subjectID ID) bool {
	for _, e := range s.Enrollments {
		if e.StudentID.Equal(studentID) && e.SubjectID.Equal(subjectID) {
			return true
		}
	}
	return false
}

// EnrolledCount is the larger of the subject's recorded headcount and the
// enrollments for it present in the snapshot.
func (s Snapshot) EnrolledCount(subject Subject) int {
	return max(subject.EnrolledCount, len(s.EnrollmentsForSubject(subject.ID)))
}

func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
