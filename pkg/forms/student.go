package forms

import (
	"strings"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Student validates a student create or update.
// Birthdate, age, phone, RFID tag and status are optional; an empty status means active.
func (v *Validator) Student(in records.StudentInput, snap records.Snapshot, isUpdate bool) validator.FormResult {
	res := validator.NewFormResult()
	exclude := excluded(in.ID, isUpdate)

	res.Add("id", recordID(in.ID, isUpdate))
	numberOK := res.Add("student_number", v.fields.StudentNumber(in.StudentNumber))
	res.Add("first_name", v.fields.PersonName("first_name", in.FirstName))
	res.Add("middle_name", v.fields.OptionalPersonName("middle_name", in.MiddleName))
	res.Add("last_name", v.fields.PersonName("last_name", in.LastName))
	emailOK := res.Add("email", v.fields.Email(in.Email))
	res.Add("phone", v.fields.Phone(in.Phone))

	hasBirthdate := strings.TrimSpace(in.Birthdate) != ""
	birthdateOK := hasBirthdate && res.Add("birthdate", v.fields.Birthdate(in.Birthdate))
	ageOK := in.Age != nil && res.Add("age", v.fields.Age(*in.Age))

	hasTag := strings.TrimSpace(in.RFIDTag) != ""
	tagOK := res.Add("rfid_tag", v.fields.RFIDTag(in.RFIDTag))
	if strings.TrimSpace(in.Status) != "" {
		res.Add("status", v.fields.StudentStatus(in.Status))
	}

	if numberOK {
		res.Add("student_number", v.rules.StudentNumberUnique(in.StudentNumber, snap.Students, exclude))
	}
	if emailOK {
		res.Add("email", v.rules.StudentEmailUnique(in.Email, snap.Students, exclude))
	}
	if hasTag && tagOK {
		res.Add("rfid_tag", v.rules.RFIDTagUnique(in.RFIDTag, snap.Students, exclude))
	}
	if birthdateOK && ageOK {
		res.Add("age", v.rules.AgeBirthdateConsistency(in.Birthdate, *in.Age))
	}
	return res
}
