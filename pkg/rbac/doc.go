// Package rbac decides which console roles may run which pre-flight checks.
//
// Roles form a small hierarchy: staff marks attendance, teacher inherits staff
// and may edit and export it, registrar inherits teacher and manages students,
// subjects, enrollments and imports, and admin holds the "*" wildcard.
// Permissions are dot-separated scopes; a trailing wildcard such as
// "students.*" grants every permission under that prefix.
//
// Basic usage:
//
//	auth, err := rbac.NewAuthorizer(rbac.ConsoleRoles())
//	if err != nil {
//		return err
//	}
//
//	ctx = rbac.WithRole(ctx, "teacher")
//	if err := auth.CanFromContext(ctx, rbac.AttendanceEdit); err != nil {
//		// errors.Is(err, rbac.ErrInsufficientPermissions)
//	}
package rbac
