package rbac

import (
	"slices"
	"strings"
)

// Matches reports whether a granted pattern covers permission.
// "*" covers everything and "students.*" covers every "students." permission.
func Matches(permission, pattern string) bool {
	if permission == pattern || pattern == Wildcard {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, Wildcard); ok {
		prefix = strings.TrimSuffix(prefix, ".")
		return strings.HasPrefix(permission, prefix+".")
	}
	return false
}

func has(granted []string, permission string) bool {
	for _, g := range granted {
		if Matches(permission, g) {
			return true
		}
	}
	return false
}

// normalize deduplicates and sorts permissions.
func normalize(perms []string) []string {
	if len(perms) == 0 {
		return nil
	}
	out := slices.Clone(perms)
	slices.Sort(out)
	return slices.Compact(out)
}
