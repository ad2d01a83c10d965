package forms

import (
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// User validates a console account. The password is required on create and
// only checked on update when a new one is supplied.
func (v *Validator) User(in records.UserInput, snap records.Snapshot, isUpdate bool) validator.FormResult {
	res := validator.NewFormResult()

	res.Add("id", recordID(in.ID, isUpdate))
	res.Add("name", v.fields.PersonName("name", in.Name))
	emailOK := res.Add("email", v.fields.Email(in.Email))
	res.Add("role", v.fields.UserRole(in.Role))
	if !isUpdate || in.Password != "" {
		res.Add("password", v.fields.Password(in.Password))
	}

	if emailOK {
		res.Add("email", v.rules.UserEmailUnique(in.Email, snap.Users, excluded(in.ID, isUpdate)))
	}
	return res
}
