package forms

import (
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Subject validates a subject create or update. On update a capacity lower
// than the current headcount is rejected.
func (v *Validator) Subject(in records.SubjectInput, snap records.Snapshot, isUpdate bool) validator.FormResult {
	res := validator.NewFormResult()

	res.Add("id", recordID(in.ID, isUpdate))
	codeOK := res.Add("code", v.fields.SubjectCode(in.Code))
	res.Add("name", v.fields.SubjectName(in.Name))
	capacityOK := in.Capacity == nil || res.Add("capacity", v.fields.Capacity(*in.Capacity))

	if codeOK {
		res.Add("code", v.rules.SubjectCodeUnique(in.Code, snap.Subjects, excluded(in.ID, isUpdate)))
	}
	if isUpdate && capacityOK {
		if current, ok := snap.Subject(in.ID); ok {
			res.Add("capacity", v.rules.CapacityChange(in.Capacity, snap.EnrolledCount(current)))
		}
	}
	return res
}
