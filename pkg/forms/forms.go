package forms

import (
	"time"

	"github.com/dmitrymomot/rollcall/pkg/business"
	"github.com/dmitrymomot/rollcall/pkg/fields"
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Validator runs composite per-entity validation.
type Validator struct {
	fields *fields.Validator
	rules  *business.Validator
}

type options struct {
	now func() time.Time
}

// Option configures a Validator.
type Option func(*options)

// WithClock overrides the time source shared by the field and business validators.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New returns a composite validator. A nil reg uses registry defaults.
func New(reg *registry.Registry, opts ...Option) *Validator {
	if reg == nil {
		reg = registry.New()
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Validator{
		fields: fields.New(reg, fields.WithClock(o.now)),
		rules:  business.New(reg, business.WithClock(o.now)),
	}
}

// Fields exposes the underlying field validator.
func (v *Validator) Fields() *fields.Validator {
	return v.fields
}

// Rules exposes the underlying business-rule validator.
func (v *Validator) Rules() *business.Validator {
	return v.rules
}

// reference checks that a foreign key is present and resolves in the snapshot.
func reference(field, label string, id records.ID, found bool) validator.Result {
	if id.IsZero() {
		return validator.Fail(validator.KindFormat, "validation.required", label+" is required",
			map[string]any{"field": field})
	}
	if !found {
		return validator.Fail(validator.KindReferentialIntegrity, "validation.reference.not_found",
			label+" does not exist", map[string]any{"field": field, "id": id.String()})
	}
	return validator.Pass()
}

// recordID requires an identifier when an existing record is being updated.
func recordID(id records.ID, isUpdate bool) validator.Result {
	if isUpdate && id.IsZero() {
		return validator.Fail(validator.KindFormat, "validation.required", "ID is required when updating a record",
			map[string]any{"field": "id"})
	}
	return validator.Pass()
}

func excluded(id records.ID, isUpdate bool) records.ID {
	if !isUpdate {
		return ""
	}
	return id
}
