package fields

import (
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/sanitizer"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// AttendanceStatus validates present, absent, late or excused, ignoring case.
func (v *Validator) AttendanceStatus(raw string) validator.Result {
	const field = "status"
	status, _ := records.ParseAttendanceStatus(raw)
	return validator.First(
		validator.Required(field, raw),
		validator.OneOf(field, status, records.AttendanceStatuses()),
	)
}

// TimeSlot validates arrival or departure, ignoring case.
func (v *Validator) TimeSlot(raw string) validator.Result {
	const field = "time_slot"
	slot, _ := records.ParseTimeSlot(raw)
	return validator.First(
		validator.Required(field, raw),
		validator.OneOf(field, slot, records.TimeSlots()),
	)
}

// Date validates a required "YYYY-MM-DD" calendar date.
func (v *Validator) Date(field, raw string) validator.Result {
	value := sanitizer.Trim(raw)
	_, err := validator.ParseDate(value, v.reg.Location())
	return validator.First(
		validator.Required(field, value),
		validator.Matches(field, value, v.reg.Patterns().ISODate, "in the format YYYY-MM-DD").
			WithKey("validation.date.format", nil),
		validator.Check(field, validator.KindFormat, "validation.date.invalid",
			validator.Label(field)+" is not a valid calendar date", nil,
			func() bool { return err == nil }),
	)
}

// Time validates a required "HH:MM AM/PM" clock time.
func (v *Validator) Time(field, raw string) validator.Result {
	value := sanitizer.Trim(raw)
	return validator.First(
		validator.Required(field, value),
		validator.Matches(field, value, v.reg.Patterns().Clock12, "in the format HH:MM AM/PM").
			WithKey("validation.time.format", nil),
	)
}

// Notes validates free-text notes after cleaning.
func (v *Validator) Notes(raw string) validator.Result {
	const field = "notes"
	return validator.First(validator.MaxLen(field, sanitizer.Clean(raw), v.reg.Bounds().NotesMax))
}
