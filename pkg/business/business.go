package business

import (
	"time"

	"github.com/dmitrymomot/rollcall/pkg/registry"
)

// Validator evaluates business rules against caller-supplied snapshots.
// It is immutable and safe for concurrent use.
type Validator struct {
	reg *registry.Registry
	now func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the time source used for "now" and "today".
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// New returns a business-rule validator. A nil reg uses registry defaults.
func New(reg *registry.Registry, opts ...Option) *Validator {
	if reg == nil {
		reg = registry.New()
	}
	v := &Validator{reg: reg, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Now returns the current instant in the registry location.
func (v *Validator) Now() time.Time {
	return v.now().In(v.reg.Location())
}
