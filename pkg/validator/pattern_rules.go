package validator

import (
	"fmt"
	"regexp"
)

// Matches validates value against a precompiled pattern.
// A nil pattern never matches.
func Matches(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern != nil && pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be %s", Label(field), description),
			Kind:           KindFormat,
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
		},
	}
}

// Check wraps an arbitrary predicate into a Rule.
func Check(field string, kind Kind, key, message string, params map[string]any, check func() bool) Rule {
	values := map[string]any{"field": field}
	for k, v := range params {
		values[k] = v
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			Kind:              kind,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}
