package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf validates that value is a member of allowed.
func OneOf[T ~string](field string, value T, allowed []T) Rule {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be one of: %s", Label(field), strings.Join(names, ", ")),
			Kind:           KindFormat,
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": strings.Join(names, ", "),
			},
		},
	}
}
