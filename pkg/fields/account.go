package fields

import (
	"fmt"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Password validates a console password. Values on the common-password
// deny-list are rejected before any composition rule is considered.
// Passwords are not sanitized: whitespace is significant.
func (v *Validator) Password(raw string) validator.Result {
	const field = "password"
	b := v.reg.Bounds()

	return validator.First(
		validator.Check(field, validator.KindFormat, "validation.required", "Password is required", nil,
			func() bool { return raw != "" }),
		validator.NotCommonPassword(field, raw, v.reg.IsCommonPassword),
		validator.MinLen(field, raw, b.PasswordMin).
			WithMessage(fmt.Sprintf("Password must be at least %d characters", b.PasswordMin)),
		validator.MaxLen(field, raw, b.PasswordMax).
			WithMessage(fmt.Sprintf("Password must be at most %d characters", b.PasswordMax)),
		validator.PasswordLowercase(field, raw),
		validator.PasswordUppercase(field, raw),
		validator.PasswordDigit(field, raw),
	)
}

// UserRole validates a console role, ignoring case.
func (v *Validator) UserRole(raw string) validator.Result {
	const field = "role"
	role, _ := records.ParseUserRole(raw)
	return validator.First(
		validator.Required(field, raw),
		validator.OneOf(field, role, records.UserRoles()),
	)
}
