package business

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// AttendanceDate rejects a date later than today. When isEdit is set the date
// must also fall within the configured edit window.
func (v *Validator) AttendanceDate(date string, isEdit bool) validator.Result {
	now := v.Now()
	day, ok := records.ParseDay(date, now.Location())
	if !ok {
		return validator.Fail(validator.KindFormat, "validation.date.format",
			"Date must be in the format YYYY-MM-DD", map[string]any{"field": "date"})
	}

	today := validator.Day(now)
	if day.After(today) {
		return validator.Fail(validator.KindTemporal, "business.attendance.future_date",
			"Attendance cannot be recorded for a future date",
			map[string]any{"field": "date", "date": day.Format(validator.DateLayout)})
	}

	if isEdit {
		window := v.reg.Policy().AttendanceEditWindowDays
		if day.Before(today.AddDate(0, 0, -window)) {
			return validator.Fail(validator.KindTemporal, "business.attendance.edit_window",
				fmt.Sprintf("Attendance records older than %d days cannot be edited", window),
				map[string]any{"field": "date", "days": window})
		}
	}
	return validator.Pass()
}

// AttendanceTimestamp rejects a timestamped mark later than now plus the
// tolerated clock skew.
func (v *Validator) AttendanceTimestamp(ts time.Time) validator.Result {
	skew := v.reg.Policy().ClockSkew
	if !ts.After(v.Now().Add(skew)) {
		return validator.Pass()
	}
	return validator.Fail(validator.KindTemporal, "business.attendance.future_time",
		"Attendance time cannot be in the future",
		map[string]any{"field": "time", "skew": skew.String()})
}
