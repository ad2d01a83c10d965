package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind classifies a validation failure.
type Kind string

const (
	KindFormat               Kind = "format_violation"
	KindRange                Kind = "range_violation"
	KindUniqueness           Kind = "uniqueness_conflict"
	KindCapacity             Kind = "capacity_exceeded"
	KindTemporal             Kind = "temporal_violation"
	KindEligibility          Kind = "eligibility_violation"
	KindReferentialIntegrity Kind = "referential_integrity_violation"
	KindBatchSize            Kind = "batch_size_violation"
	KindBatchDuplicate       Kind = "batch_duplicate_violation"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string         `json:"field"`
	Message           string         `json:"message"`
	Kind              Kind           `json:"kind,omitempty"`
	TranslationKey    string         `json:"key,omitempty"`
	TranslationValues map[string]any `json:"params,omitempty"`
}

// Result converts the error into a failing single-check result.
func (e ValidationError) Result() Result {
	return Result{
		Valid:  false,
		Error:  e.Message,
		Kind:   e.Kind,
		Key:    e.TranslationKey,
		Params: e.TranslationValues,
	}
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns every message recorded for field, in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// OfKind returns the subset of errors classified as kind.
func (ve ValidationErrors) OfKind(kind Kind) ValidationErrors {
	var out ValidationErrors
	for _, err := range ve {
		if err.Kind == kind {
			out = append(out, err)
		}
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
// Check is evaluated lazily, so a rule may be built from values that a
// preceding rule has not yet validated.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage replaces the human-readable message of the rule.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// WithKey replaces the translation key and merges params into the translation values.
func (r Rule) WithKey(key string, params map[string]any) Rule {
	r.Error.TranslationKey = key
	if len(params) > 0 {
		merged := make(map[string]any, len(r.Error.TranslationValues)+len(params))
		for k, v := range r.Error.TranslationValues {
			merged[k] = v
		}
		for k, v := range params {
			merged[k] = v
		}
		r.Error.TranslationValues = merged
	}
	return r
}

// WithKind reclassifies the rule failure.
func (r Rule) WithKind(kind Kind) Rule {
	r.Error.Kind = kind
	return r
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First evaluates rules in order and reports the first failure.
// Rules after the failing one are never checked.
func First(rules ...Rule) Result {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error.Result()
		}
	}
	return Pass()
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// Label turns a machine field name into a sentence-case label:
// "student_number" becomes "Student number".
func Label(field string) string {
	if field == "" {
		return "Value"
	}
	s := strings.ReplaceAll(field, "_", " ")
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
