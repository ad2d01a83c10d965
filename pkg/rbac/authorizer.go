package rbac

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Authorizer answers permission questions for a fixed role set. All
// inherited permissions are resolved up front; the value is immutable and
// safe for concurrent use.
type Authorizer struct {
	permissions map[string][]string
	sorted      []string
}

// NewAuthorizer validates the hierarchy and precomputes every role's
// effective permissions.
func NewAuthorizer(roles map[string]Role) (*Authorizer, error) {
	if roles == nil {
		roles = map[string]Role{}
	}
	if err := validateInheritance(roles); err != nil {
		return nil, err
	}

	perms := make(map[string][]string, len(roles))
	for name := range roles {
		perms[name] = normalize(collect(name, roles, map[string]bool{}))
	}
	return &Authorizer{permissions: perms, sorted: sortByDepth(roles)}, nil
}

// Can checks if role has permission, directly or through inheritance.
func (a *Authorizer) Can(role, permission string) error {
	granted, ok := a.permissions[role]
	if !ok {
		return ErrInvalidRole
	}
	if !has(granted, permission) {
		return ErrInsufficientPermissions
	}
	return nil
}

// CanAny checks if role has at least one of permissions.
func (a *Authorizer) CanAny(role string, permissions ...string) error {
	if len(permissions) == 0 {
		return nil
	}
	granted, ok := a.permissions[role]
	if !ok {
		return ErrInvalidRole
	}
	for _, p := range permissions {
		if has(granted, p) {
			return nil
		}
	}
	return ErrInsufficientPermissions
}

// CanAll checks if role has every one of permissions.
func (a *Authorizer) CanAll(role string, permissions ...string) error {
	granted, ok := a.permissions[role]
	if !ok {
		return ErrInvalidRole
	}
	for _, p := range permissions {
		if !has(granted, p) {
			return ErrInsufficientPermissions
		}
	}
	return nil
}

// CanFromContext checks the role stored in ctx.
func (a *Authorizer) CanFromContext(ctx context.Context, permission string) error {
	role, ok := RoleFromContext(ctx)
	if !ok {
		return errors.Join(ErrRoleNotInContext, ErrInsufficientPermissions)
	}
	return a.Can(role, permission)
}

// VerifyRole returns ErrInvalidRole when role is unknown.
func (a *Authorizer) VerifyRole(role string) error {
	if _, ok := a.permissions[role]; !ok {
		return ErrInvalidRole
	}
	return nil
}

// Permissions returns the effective permissions of role.
func (a *Authorizer) Permissions(role string) []string {
	return slices.Clone(a.permissions[role])
}

// Roles returns every role name, base roles first.
func (a *Authorizer) Roles() []string {
	return slices.Clone(a.sorted)
}

func collect(name string, roles map[string]Role, visited map[string]bool) []string {
	if visited[name] {
		return nil
	}
	visited[name] = true

	role, ok := roles[name]
	if !ok {
		return nil
	}
	out := slices.Clone(role.Permissions)
	for _, parent := range role.Inherits {
		out = append(out, collect(parent, roles, visited)...)
	}
	return out
}

func validateInheritance(roles map[string]Role) error {
	for _, name := range slices.Sorted(maps.Keys(roles)) {
		if err := walk(name, roles, []string{name}); err != nil {
			return err
		}
	}
	return nil
}

// walk follows inheritance depth-first, failing on a cycle or excessive depth.
func walk(name string, roles map[string]Role, path []string) error {
	if len(path) > MaxInheritanceDepth+1 {
		return errors.Join(ErrCircularInheritance,
			fmt.Errorf("inheritance depth exceeds maximum allowed depth of %d", MaxInheritanceDepth))
	}
	for _, parent := range roles[name].Inherits {
		if slices.Contains(path, parent) {
			return errors.Join(ErrCircularInheritance,
				fmt.Errorf("circular inheritance detected: %s -> %s", name, parent))
		}
		if err := walk(parent, roles, append(slices.Clone(path), parent)); err != nil {
			return err
		}
	}
	return nil
}

func sortByDepth(roles map[string]Role) []string {
	depths := make(map[string]int, len(roles))
	var depth func(string) int
	depth = func(name string) int {
		if d, ok := depths[name]; ok {
			return d
		}
		d := 0
		for _, parent := range roles[name].Inherits {
			d = max(d, depth(parent)+1)
		}
		depths[name] = d
		return d
	}

	names := slices.Sorted(maps.Keys(roles))
	slices.SortStableFunc(names, func(a, b string) int { return depth(a) - depth(b) })
	return names
}
