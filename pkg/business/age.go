package business

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// AgeOn returns the age in whole years on the day at, counting a birthday
// only once its month and day have been reached.
func AgeOn(birth, at time.Time) int {
	return validator.AgeOn(birth, at)
}

// AgeBirthdateConsistency rejects a declared age that differs from the age
// implied by birthdate by more than the policy tolerance.
func (v *Validator) AgeBirthdateConsistency(birthdate string, declaredAge int) validator.Result {
	now := v.Now()
	birth, err := validator.ParseDate(birthdate, now.Location())
	if err != nil {
		return validator.Fail(validator.KindFormat, "validation.date.format",
			"Birthdate must be in the format YYYY-MM-DD", map[string]any{"field": "birthdate"})
	}

	computed := AgeOn(birth, now)
	tolerance := v.reg.Policy().AgeTolerance
	diff := computed - declaredAge
	if diff < 0 {
		diff = -diff
	}
	if diff <= tolerance {
		return validator.Pass()
	}
	return validator.Fail(validator.KindRange, "business.age.mismatch",
		fmt.Sprintf("Age %d does not match the birthdate (calculated age is %d)", declaredAge, computed),
		map[string]any{"field": "age", "declared": declaredAge, "computed": computed, "tolerance": tolerance})
}
