package registry

import (
	"slices"
	"strings"
	"time"
)

type builder struct {
	policy          Policy
	files           map[FileCategory]FileLimit
	commonPasswords map[string]struct{}
}

// Option configures a Registry under construction.
// Non-positive numeric values are ignored so defaults stay in effect.
type Option func(*builder)

func WithAttendanceEditWindow(days int) Option {
	return func(b *builder) {
		if days > 0 {
			b.policy.AttendanceEditWindowDays = days
		}
	}
}

func WithClockSkew(d time.Duration) Option {
	return func(b *builder) {
		if d >= 0 {
			b.policy.ClockSkew = d
		}
	}
}

// WithAgeTolerance sets the allowed drift between declared age and birthdate.
// Zero demands an exact match.
func WithAgeTolerance(years int) Option {
	return func(b *builder) {
		if years >= 0 {
			b.policy.AgeTolerance = years
		}
	}
}

// WithBulkLimits sets the ceilings for generic bulk edits and bulk attendance marking.
func WithBulkLimits(edit, attendance int) Option {
	return func(b *builder) {
		if edit > 0 {
			b.policy.BulkEditMax = edit
		}
		if attendance > 0 {
			b.policy.BulkAttendanceMax = attendance
		}
	}
}

func WithImportMaxRows(n int) Option {
	return func(b *builder) {
		if n > 0 {
			b.policy.ImportMaxRows = n
		}
	}
}

func WithDuplicateKey(key DuplicateKey) Option {
	return func(b *builder) {
		b.policy.DuplicateKey = key
	}
}

func WithLocation(loc *time.Location) Option {
	return func(b *builder) {
		if loc != nil {
			b.policy.Location = loc
		}
	}
}

// WithFileLimit overrides or adds an upload category.
func WithFileLimit(category FileCategory, maxBytes int64, mimeTypes ...string) Option {
	return func(b *builder) {
		if category == "" || maxBytes <= 0 || len(mimeTypes) == 0 {
			return
		}
		files := make(map[FileCategory]FileLimit, len(b.files)+1)
		for k, v := range b.files {
			files[k] = v
		}
		files[category] = FileLimit{MaxBytes: maxBytes, MIMETypes: slices.Clone(mimeTypes)}
		b.files = files
	}
}

// WithCommonPasswords extends the password deny-list.
func WithCommonPasswords(passwords ...string) Option {
	return func(b *builder) {
		merged := make(map[string]struct{}, len(b.commonPasswords)+len(passwords))
		for k := range b.commonPasswords {
			merged[k] = struct{}{}
		}
		for _, p := range passwords {
			if p = strings.TrimSpace(p); p != "" {
				merged[strings.ToLower(p)] = struct{}{}
			}
		}
		b.commonPasswords = merged
	}
}
