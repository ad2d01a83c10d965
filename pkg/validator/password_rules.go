package validator

import (
	"strings"
	"unicode"
)

func hasRune(value string, pred func(rune) bool) bool {
	return strings.IndexFunc(value, pred) >= 0
}

func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool { return hasRune(value, unicode.IsLower) },
		Error: ValidationError{
			Field:             field,
			Message:           "Password must contain at least one lowercase letter",
			Kind:              KindFormat,
			TranslationKey:    "validation.password.lowercase",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool { return hasRune(value, unicode.IsUpper) },
		Error: ValidationError{
			Field:             field,
			Message:           "Password must contain at least one uppercase letter",
			Kind:              KindFormat,
			TranslationKey:    "validation.password.uppercase",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool { return hasRune(value, unicode.IsDigit) },
		Error: ValidationError{
			Field:             field,
			Message:           "Password must contain at least one number",
			Kind:              KindFormat,
			TranslationKey:    "validation.password.digit",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// NotCommonPassword rejects value when isCommon reports it as a known weak
// password. isCommon receives the lowercased value.
func NotCommonPassword(field, value string, isCommon func(string) bool) Rule {
	return Rule{
		Check: func() bool {
			return isCommon == nil || !isCommon(strings.ToLower(value))
		},
		Error: ValidationError{
			Field:             field,
			Message:           "This password is too common. Please choose a stronger password",
			Kind:              KindFormat,
			TranslationKey:    "validation.password.common",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
