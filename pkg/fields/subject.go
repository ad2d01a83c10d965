package fields

import (
	"fmt"

	"github.com/dmitrymomot/rollcall/pkg/sanitizer"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// SubjectCode validates a case-insensitive code of letters, digits and hyphens.
func (v *Validator) SubjectCode(raw string) validator.Result {
	const field = "code"
	value := sanitizer.Identifier(raw)
	b := v.reg.Bounds()

	return validator.First(
		validator.Required(field, value).WithMessage("Subject code is required"),
		validator.MinLen(field, value, b.SubjectCodeMin).WithMessage(fmt.Sprintf("Subject code must be at least %d characters", b.SubjectCodeMin)),
		validator.MaxLen(field, value, b.SubjectCodeMax).WithMessage(fmt.Sprintf("Subject code must be at most %d characters", b.SubjectCodeMax)),
		validator.Matches(field, value, v.reg.Patterns().SubjectCode, "letters, digits and hyphens").
			WithMessage("Subject code can only contain letters, numbers and hyphens").
			WithKey("validation.subject_code.format", nil),
	)
}

func (v *Validator) SubjectName(raw string) validator.Result {
	const field = "name"
	value := sanitizer.Name(raw)
	b := v.reg.Bounds()

	return validator.First(
		validator.Required(field, value).WithMessage("Subject name is required"),
		validator.MinLen(field, value, b.SubjectNameMin),
		validator.MaxLen(field, value, b.SubjectNameMax),
	)
}

// Capacity validates a subject's seat count.
func (v *Validator) Capacity(capacity int) validator.Result {
	b := v.reg.Bounds()
	return validator.First(validator.Between("capacity", capacity, b.CapacityMin, b.CapacityMax))
}
