package registry

import (
	"errors"
	"fmt"
	"time"
)

// Config is the environment-facing form of Policy.
type Config struct {
	AttendanceEditWindowDays int           `env:"ATTENDANCE_EDIT_WINDOW_DAYS" envDefault:"30"`
	ClockSkew                time.Duration `env:"ATTENDANCE_CLOCK_SKEW" envDefault:"5m"`
	AgeTolerance             int           `env:"AGE_TOLERANCE_YEARS" envDefault:"1"`
	BulkEditMax              int           `env:"BULK_EDIT_MAX" envDefault:"100"`
	BulkAttendanceMax        int           `env:"BULK_ATTENDANCE_MAX" envDefault:"500"`
	ImportMaxRows            int           `env:"IMPORT_MAX_ROWS" envDefault:"5000"`
	DuplicateKeySubject      bool          `env:"DUPLICATE_KEY_SUBJECT" envDefault:"true"`
	DuplicateKeyTimeSlot     bool          `env:"DUPLICATE_KEY_TIME_SLOT" envDefault:"false"`
	Timezone                 string        `env:"TIMEZONE" envDefault:"Local"`
	CommonPasswords          []string      `env:"EXTRA_COMMON_PASSWORDS" envSeparator:","`
}

// FromConfig validates cfg and builds a registry from it.
func FromConfig(cfg Config) (*Registry, error) {
	var errs []error
	if cfg.AttendanceEditWindowDays <= 0 {
		errs = append(errs, fmt.Errorf("attendance edit window must be positive, got %d", cfg.AttendanceEditWindowDays))
	}
	if cfg.ClockSkew < 0 {
		errs = append(errs, fmt.Errorf("clock skew must not be negative, got %s", cfg.ClockSkew))
	}
	if cfg.AgeTolerance < 0 {
		errs = append(errs, fmt.Errorf("age tolerance must not be negative, got %d", cfg.AgeTolerance))
	}
	if cfg.BulkEditMax <= 0 || cfg.BulkAttendanceMax <= 0 {
		errs = append(errs, fmt.Errorf("bulk limits must be positive, got %d and %d", cfg.BulkEditMax, cfg.BulkAttendanceMax))
	}
	if cfg.ImportMaxRows <= 0 {
		errs = append(errs, fmt.Errorf("import row limit must be positive, got %d", cfg.ImportMaxRows))
	}

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}

	return New(
		WithAttendanceEditWindow(cfg.AttendanceEditWindowDays),
		WithClockSkew(cfg.ClockSkew),
		WithAgeTolerance(cfg.AgeTolerance),
		WithBulkLimits(cfg.BulkEditMax, cfg.BulkAttendanceMax),
		WithImportMaxRows(cfg.ImportMaxRows),
		WithDuplicateKey(DuplicateKey{Subject: cfg.DuplicateKeySubject, TimeSlot: cfg.DuplicateKeyTimeSlot}),
		WithLocation(loc),
		WithCommonPasswords(cfg.CommonPasswords...),
	), nil
}

func loadLocation(name string) (*time.Location, error) {
	switch name {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Join(ErrUnknownTimezone, err)
	}
	return loc, nil
}
