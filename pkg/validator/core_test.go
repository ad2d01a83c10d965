package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rollcall/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Helpers(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "email", Message: "first", Kind: validator.KindFormat},
		{Field: "email", Message: "second", Kind: validator.KindUniqueness},
		{Field: "age", Message: "range", Kind: validator.KindRange},
	}

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"first", "second"}, errs.Get("email"))
	assert.Equal(t, []string{"email", "age"}, errs.Fields())
	assert.Len(t, errs.OfKind(validator.KindUniqueness), 1)
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Ana"),
			validator.Between("age", 12, 3, 100),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", " "),
			validator.Between("age", 120, 3, 100),
		)
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"name", "age"}, errs.Fields())
		assert.Equal(t, validator.KindFormat, errs[0].Kind)
		assert.Equal(t, validator.KindRange, errs[1].Kind)
	})

	t.Run("wrapped errors are still detected", func(t *testing.T) {
		err := validator.Apply(validator.Required("name", ""))
		wrapped := fmt.Errorf("submit: %w", err)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
		assert.False(t, validator.IsValidationError(errors.New("plain")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("stops at the first failing rule", func(t *testing.T) {
		evaluated := false
		res := validator.First(
			validator.Required("code", ""),
			validator.Rule{Check: func() bool { evaluated = true; return false }},
		)
		assert.False(t, res.Valid)
		assert.Equal(t, "Code is required", res.Error)
		assert.Equal(t, validator.KindFormat, res.Kind)
		assert.Equal(t, "validation.required", res.Key)
		assert.False(t, evaluated)
	})

	t.Run("passes when no rule fails", func(t *testing.T) {
		res := validator.First(validator.MinLen("code", "ab", 2), validator.MaxLen("code", "ab", 20))
		assert.Equal(t, validator.Pass(), res)
	})

	t.Run("length is counted in characters", func(t *testing.T) {
		assert.True(t, validator.MaxLen("name", "Zoë", 3).Check())
		assert.True(t, validator.MinLen("name", "Ñá", 2).Check())
	})
}

func TestRuleOverrides(t *testing.T) {
	t.Parallel()

	rule := validator.Required("capacity", "").
		WithMessage("Capacity is mandatory").
		WithKey("validation.capacity.required", map[string]any{"hint": "1-500"}).
		WithKind(validator.KindRange)

	res := validator.First(rule)
	assert.Equal(t, "Capacity is mandatory", res.Error)
	assert.Equal(t, "validation.capacity.required", res.Key)
	assert.Equal(t, validator.KindRange, res.Kind)
	assert.Equal(t, map[string]any{"field": "capacity", "hint": "1-500"}, res.Params)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "snake case", input: "student_number", expected: "Student number"},
		{name: "single word", input: "email", expected: "Email"},
		{name: "empty", input: "", expected: "Value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.Label(tt.input))
		})
	}
}
