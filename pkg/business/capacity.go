package business

import (
	"fmt"

	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// EnrollmentCapacity rejects enrolling requested more students when the
// subject would exceed its capacity. A nil capacity is unlimited.
func (v *Validator) EnrollmentCapacity(capacity *int, enrolled, requested int) validator.Result {
	if capacity == nil {
		return validator.Pass()
	}
	limit := *capacity
	if enrolled+requested <= limit {
		return validator.Pass()
	}
	available := max(limit-enrolled, 0)
	return validator.Fail(validator.KindCapacity, "business.capacity.exceeded",
		fmt.Sprintf("Enrollment would exceed the subject capacity of %d. Only %d spot(s) available.", limit, available),
		map[string]any{
			"field":     "subject_id",
			"capacity":  limit,
			"enrolled":  enrolled,
			"requested": requested,
			"available": available,
		})
}

// CapacityChange rejects shrinking a subject below its current headcount.
// Removing the limit is always allowed.
func (v *Validator) CapacityChange(newCapacity *int, enrolled int) validator.Result {
	if newCapacity == nil || *newCapacity >= enrolled {
		return validator.Pass()
	}
	return validator.Fail(validator.KindCapacity, "business.capacity.below_enrollment",
		fmt.Sprintf("Capacity cannot be reduced to %d because %d student(s) are already enrolled", *newCapacity, enrolled),
		map[string]any{"field": "capacity", "capacity": *newCapacity, "enrolled": enrolled})
}
