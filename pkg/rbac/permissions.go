package rbac

import "github.com/dmitrymomot/rollcall/pkg/records"

// Console permissions.
const (
	StudentsRead   = "students.read"
	StudentsWrite  = "students.write"
	StudentsDelete = "students.delete"

	SubjectsRead   = "subjects.read"
	SubjectsWrite  = "subjects.write"
	SubjectsDelete = "subjects.delete"

	EnrollmentsWrite = "enrollments.write"

	AttendanceMark   = "attendance.mark"
	AttendanceEdit   = "attendance.edit"
	AttendanceImport = "attendance.import"
	AttendanceExport = "attendance.export"

	UsersManage = "users.manage"
	FilesUpload = "files.upload"
)

// MaxInheritanceDepth bounds how deep role inheritance may nest.
const MaxInheritanceDepth = 10

// Wildcard grants every permission.
const Wildcard = "*"

// Role is a set of permissions with optional inheritance.
type Role struct {
	Permissions []string `json:"permissions"`
	Inherits    []string `json:"inherits,omitempty"`
}

// ConsoleRoles returns the default role hierarchy of the attendance console.
func ConsoleRoles() map[string]Role {
	return map[string]Role{
		string(records.RoleStaff): {
			Permissions: []string{StudentsRead, SubjectsRead, AttendanceMark, FilesUpload},
		},
		string(records.RoleTeacher): {
			Permissions: []string{AttendanceEdit, AttendanceExport},
			Inherits:    []string{string(records.RoleStaff)},
		},
		string(records.RoleRegistrar): {
			Permissions: []string{"students.*", "subjects.*", EnrollmentsWrite, AttendanceImport},
			Inherits:    []string{string(records.RoleTeacher)},
		},
		string(records.RoleAdmin): {
			Permissions: []string{Wildcard},
		},
	}
}
