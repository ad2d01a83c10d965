package business

import (
	"fmt"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// EnrollmentEligibility rejects enrolling a student whose status is in the
// closed ineligible set. Any other status, including an unset one, passes.
func (v *Validator) EnrollmentEligibility(status records.StudentStatus) validator.Result {
	if status.CanEnroll() {
		return validator.Pass()
	}
	normalized, _ := records.ParseStudentStatus(string(status))
	return validator.Fail(validator.KindEligibility, "business.enrollment.ineligible",
		fmt.Sprintf("Students with status %q cannot be enrolled", normalized),
		map[string]any{"field": "student_id", "status": string(normalized)})
}
