package bulk

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/rollcall/pkg/business"
	"github.com/dmitrymomot/rollcall/pkg/fields"
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Validator checks batches against the registry's bulk limits.
type Validator struct {
	reg    *registry.Registry
	fields *fields.Validator
	rules  *business.Validator
}

type options struct {
	now func() time.Time
}

// Option configures a Validator.
type Option func(*options)

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New returns a bulk validator. A nil reg uses registry defaults.
func New(reg *registry.Registry, opts ...Option) *Validator {
	if reg == nil {
		reg = registry.New()
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Validator{
		reg:    reg,
		fields: fields.New(reg, fields.WithClock(o.now)),
		rules:  business.New(reg, business.WithClock(o.now)),
	}
}

// Size rejects an empty batch and a batch larger than limit.
func (v *Validator) Size(count, limit int) validator.Result {
	switch {
	case count <= 0:
		return validator.Fail(validator.KindBatchSize, "bulk.size.empty",
			"Select at least one item", map[string]any{"count": count, "max": limit})
	case count > limit:
		return validator.Fail(validator.KindBatchSize, "bulk.size.exceeded",
			fmt.Sprintf("You can only process up to %d items at once", limit),
			map[string]any{"count": count, "max": limit})
	}
	return validator.Pass()
}

// Edit checks a generic bulk edit against the configured ceiling.
func (v *Validator) Edit(count int) validator.Result {
	return v.Size(count, v.reg.Policy().BulkEditMax)
}

// Attendance validates marking the same status for many students on one date.
// Identifiers are compared in canonical form, so 2 and "2" collide.
func (v *Validator) Attendance(ids []records.ID, date, status string) validator.Result {
	if res := v.Size(len(ids), v.reg.Policy().BulkAttendanceMax); !res.Valid {
		return res
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		if id.IsZero() {
			return validator.Fail(validator.KindFormat, "bulk.id.missing",
				fmt.Sprintf("Item %d has no student ID", i+1),
				map[string]any{"field": "student_ids", "position": i + 1})
		}
		keys[i] = id.String()
	}

	for _, res := range []validator.Result{
		v.DuplicateKeys(keys),
		v.fields.Date("date", date),
		v.fields.AttendanceStatus(status),
		v.rules.AttendanceDate(date, false),
	} {
		if !res.Valid {
			return res
		}
	}
	return validator.Pass()
}

// DuplicateKeys reports the first key that appears more than once, with every
// 1-based position it occupies.
func (v *Validator) DuplicateKeys(keys []string) validator.Result {
	seen := make(map[string]int, len(keys))
	for i, key := range keys {
		first, dup := seen[key]
		if !dup {
			seen[key] = i
			continue
		}

		positions := []int{first + 1}
		for j := i; j < len(keys); j++ {
			if keys[j] == key {
				positions = append(positions, j+1)
			}
		}
		return validator.Fail(validator.KindBatchDuplicate, "bulk.duplicate",
			fmt.Sprintf("Duplicate entry %q found at positions %s", key, joinInts(positions)),
			map[string]any{"value": key, "positions": positions})
	}
	return validator.Pass()
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
