package records

import (
	"strings"
	"time"
)

// Student is an existing student as supplied in a snapshot.
type Student struct {
	ID            ID            `json:"id"`
	StudentNumber string        `json:"student_number"`
	FirstName     string        `json:"first_name"`
	MiddleName    string        `json:"middle_name,omitempty"`
	LastName      string        `json:"last_name"`
	Email         string        `json:"email,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	Birthdate     string        `json:"birthdate,omitempty"`
	RFIDTag       string        `json:"rfid_tag,omitempty"`
	Status        StudentStatus `json:"status"`
	CreatedBy     ID            `json:"created_by,omitempty"`
}

// Subject is an existing subject. A nil Capacity means unlimited.
type Subject struct {
	ID            ID     `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Capacity      *int   `json:"capacity,omitempty"`
	EnrolledCount int    `json:"enrolled_count,omitempty"`
	CreatedBy     ID     `json:"created_by,omitempty"`
}

type Enrollment struct {
	ID        ID `json:"id"`
	StudentID ID `json:"student_id"`
	SubjectID ID `json:"subject_id"`
	CreatedBy ID `json:"created_by,omitempty"`
}

// Attendance is an existing attendance mark. Date is "YYYY-MM-DD" or an RFC 3339 timestamp.
type Attendance struct {
	ID        ID               `json:"id"`
	StudentID ID               `json:"student_id"`
	SubjectID ID               `json:"subject_id,omitempty"`
	Date      string           `json:"date"`
	TimeSlot  TimeSlot         `json:"time_slot,omitempty"`
	Status    AttendanceStatus `json:"status"`
	Time      string           `json:"time,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	MarkedBy  ID               `json:"marked_by,omitempty"`
}

type User struct {
	ID    ID       `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// StudentInput is a proposed student as submitted by a form or import.
type StudentInput struct {
	ID            ID     `json:"id,omitempty"`
	StudentNumber string `json:"student_number"`
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name,omitempty"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Birthdate     string `json:"birthdate,omitempty"`
	Age           *int   `json:"age,omitempty"`
	RFIDTag       string `json:"rfid_tag,omitempty"`
	Status        string `json:"status,omitempty"`
}

type SubjectInput struct {
	ID       ID     `json:"id,omitempty"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
}

type EnrollmentInput struct {
	ID        ID `json:"id,omitempty"`
	StudentID ID `json:"student_id"`
	SubjectID ID `json:"subject_id"`
}

// AttendanceInput is a proposed attendance mark. MarkedAt is set for
// timestamped records, such as tag scans, and is checked with clock-skew tolerance.
type AttendanceInput struct {
	ID        ID         `json:"id,omitempty"`
	StudentID ID         `json:"student_id"`
	SubjectID ID         `json:"subject_id,omitempty"`
	Date      string     `json:"date"`
	TimeSlot  string     `json:"time_slot"`
	Status    string     `json:"status"`
	Time      string     `json:"time,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	MarkedAt  *time.Time `json:"marked_at,omitempty"`
}

type UserInput struct {
	ID       ID     `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// ParseDay reads a calendar day from "YYYY-MM-DD" or an RFC 3339 timestamp.
// Timestamps are converted to loc before taking the date.
func ParseDay(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		y, m, d := t.In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}
