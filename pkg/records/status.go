package records

import (
	"slices"
	"strings"
)

type StudentStatus string

const (
	StudentActive      StudentStatus = "active"
	StudentInactive    StudentStatus = "inactive"
	StudentGraduated   StudentStatus = "graduated"
	StudentTransferred StudentStatus = "transferred"
	StudentSuspended   StudentStatus = "suspended"
	StudentDropped     StudentStatus = "dropped"
)

// StudentStatuses lists every known student status.
func StudentStatuses() []StudentStatus {
	return []StudentStatus{StudentActive, StudentInactive, StudentGraduated, StudentTransferred, StudentSuspended, StudentDropped}
}

// IneligibleStatuses is the closed set of statuses that block new enrollments.
func IneligibleStatuses() []StudentStatus {
	return []StudentStatus{StudentInactive, StudentGraduated, StudentTransferred, StudentSuspended, StudentDropped}
}

// CanEnroll reports whether a student with this status may be newly enrolled.
func (s StudentStatus) CanEnroll() bool {
	return !slices.Contains(IneligibleStatuses(), s.normalize())
}

func (s StudentStatus) normalize() StudentStatus {
	return StudentStatus(strings.ToLower(strings.TrimSpace(string(s))))
}

// ParseStudentStatus matches raw case-insensitively against the known statuses.
func ParseStudentStatus(raw string) (StudentStatus, bool) {
	s := StudentStatus(raw).normalize()
	return s, slices.Contains(StudentStatuses(), s)
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

func AttendanceStatuses() []AttendanceStatus {
	return []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused}
}

// ParseAttendanceStatus matches raw case-insensitively.
func ParseAttendanceStatus(raw string) (AttendanceStatus, bool) {
	s := AttendanceStatus(strings.ToLower(strings.TrimSpace(raw)))
	return s, slices.Contains(AttendanceStatuses(), s)
}

// Label returns the capitalized export form, e.g. "Present".
func (s AttendanceStatus) Label() string {
	return capitalize(string(s))
}

type TimeSlot string

const (
	SlotArrival   TimeSlot = "arrival"
	SlotDeparture TimeSlot = "departure"
)

func TimeSlots() []TimeSlot {
	return []TimeSlot{SlotArrival, SlotDeparture}
}

func ParseTimeSlot(raw string) (TimeSlot, bool) {
	s := TimeSlot(strings.ToLower(strings.TrimSpace(raw)))
	return s, slices.Contains(TimeSlots(), s)
}

func (s TimeSlot) Label() string {
	return capitalize(string(s))
}

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleRegistrar UserRole = "registrar"
	RoleTeacher   UserRole = "teacher"
	RoleStaff     UserRole = "staff"
)

func UserRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleRegistrar, RoleTeacher, RoleStaff}
}

func ParseUserRole(raw string) (UserRole, bool) {
	r := UserRole(strings.ToLower(strings.TrimSpace(raw)))
	return r, slices.Contains(UserRoles(), r)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
