package registry

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// Bounds are the fixed numeric limits shared by every validator.
type Bounds struct {
	NameMin, NameMax               int
	EmailMax                       int
	EmailLocalMax                  int
	EmailDomainMax                 int
	AgeMin, AgeMax                 int
	PasswordMin, PasswordMax       int
	SubjectCodeMin, SubjectCodeMax int
	SubjectNameMin, SubjectNameMax int
	CapacityMin, CapacityMax       int
	// StudentYearsBack and StudentYearsAhead bound the two-digit intake year
	// of a student number relative to the current year.
	StudentYearsBack  int
	StudentYearsAhead int
	SearchMax         int
	NotesMax          int
	PhoneDigitsMin    int
	PhoneDigitsMax    int
	RFIDTagMin        int
	RFIDTagMax        int
}

// DefaultBounds returns the limits used by the console.
func DefaultBounds() Bounds {
	return Bounds{
		NameMin:           2,
		NameMax:           50,
		EmailMax:          254,
		EmailLocalMax:     64,
		EmailDomainMax:    253,
		AgeMin:            3,
		AgeMax:            100,
		PasswordMin:       8,
		PasswordMax:       128,
		SubjectCodeMin:    2,
		SubjectCodeMax:    20,
		SubjectNameMin:    2,
		SubjectNameMax:    100,
		CapacityMin:       1,
		CapacityMax:       500,
		StudentYearsBack:  10,
		StudentYearsAhead: 1,
		SearchMax:         100,
		NotesMax:          500,
		PhoneDigitsMin:    7,
		PhoneDigitsMax:    15,
		RFIDTagMin:        4,
		RFIDTagMax:        32,
	}
}

// DuplicateKey selects which attributes, besides student and calendar date,
// make two attendance records collide.
type DuplicateKey struct {
	Subject  bool `json:"subject"`
	TimeSlot bool `json:"time_slot"`
}

// Policy holds the tunable business knobs.
type Policy struct {
	// AttendanceEditWindowDays is how far back, in days, an existing attendance record may be edited.
	AttendanceEditWindowDays int
	// ClockSkew is tolerated for timestamped records that appear slightly in the future.
	ClockSkew time.Duration
	// AgeTolerance is the allowed difference in years between a declared age and the birthdate.
	AgeTolerance      int
	BulkEditMax       int
	BulkAttendanceMax int
	ImportMaxRows     int
	DuplicateKey      DuplicateKey
	// Location defines the calendar used for "today".
	Location *time.Location
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		AttendanceEditWindowDays: 30,
		ClockSkew:                5 * time.Minute,
		AgeTolerance:             1,
		BulkEditMax:              100,
		BulkAttendanceMax:        500,
		ImportMaxRows:            5000,
		DuplicateKey:             DuplicateKey{Subject: true},
		Location:                 time.Local,
	}
}

// Registry is the immutable set of bounds, patterns, file limits and policy
// consulted by every validator. Build it once with New or FromConfig and share
// the pointer; none of its methods mutate it.
type Registry struct {
	bounds          Bounds
	policy          Policy
	patterns        Patterns
	files           map[FileCategory]FileLimit
	commonPasswords map[string]struct{}
}

// New builds a registry from defaults and the given options.
func New(opts ...Option) *Registry {
	b := &builder{
		policy:          DefaultPolicy(),
		files:           defaultFileLimits(),
		commonPasswords: defaultCommonPasswords(),
	}
	for _, opt := range opts {
		opt(b)
	}

	bounds := DefaultBounds()
	return &Registry{
		bounds:          bounds,
		policy:          b.policy,
		patterns:        compilePatterns(bounds),
		files:           b.files,
		commonPasswords: b.commonPasswords,
	}
}

func (r *Registry) Bounds() Bounds {
	return r.bounds
}

func (r *Registry) Policy() Policy {
	return r.policy
}

func (r *Registry) Patterns() Patterns {
	return r.patterns
}

// Location is the timezone used to decide which calendar day "now" is.
func (r *Registry) Location() *time.Location {
	if r.policy.Location == nil {
		return time.Local
	}
	return r.policy.Location
}

// FileLimit returns the limit for category. The MIME list is a copy.
func (r *Registry) FileLimit(category FileCategory) (FileLimit, bool) {
	limit, ok := r.files[category]
	if !ok {
		return FileLimit{}, false
	}
	limit.MIMETypes = slices.Clone(limit.MIMETypes)
	return limit, true
}

// FileCategories lists the configured upload categories in stable order.
func (r *Registry) FileCategories() []FileCategory {
	return slices.Sorted(maps.Keys(r.files))
}

// IsCommonPassword reports whether password is on the deny-list, ignoring case.
func (r *Registry) IsCommonPassword(password string) bool {
	_, ok := r.commonPasswords[strings.ToLower(password)]
	return ok
}
