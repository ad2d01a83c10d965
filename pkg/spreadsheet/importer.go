package spreadsheet

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrymomot/rollcall/pkg/business"
	"github.com/dmitrymomot/rollcall/pkg/fields"
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Issue is one row-level import failure.
type Issue struct {
	Row     int            `json:"row"`
	Column  string         `json:"column,omitempty"`
	Message string         `json:"message"`
	Kind    validator.Kind `json:"kind"`
	Key     string         `json:"key,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
}

// Report summarizes an import check. Errors holds the display messages, each
// prefixed with its sheet row.
type Report struct {
	Valid     bool     `json:"is_valid"`
	TotalRows int      `json:"total_rows"`
	ValidRows int      `json:"valid_rows"`
	Errors    []string `json:"errors"`
	Issues    []Issue  `json:"issues,omitempty"`
}

func (r *Report) add(row int, column string, res validator.Result) bool {
	if res.Valid {
		return true
	}
	msg := res.Error
	if row > 0 {
		msg = fmt.Sprintf("Row %d: %s", row, res.Error)
	}
	r.Valid = false
	r.Errors = append(r.Errors, msg)
	r.Issues = append(r.Issues, Issue{Row: row, Column: column, Message: msg, Kind: res.Kind, Key: res.Key, Params: res.Params})
	return false
}

// Rejected returns a failing report carrying one file-level issue.
func Rejected(res validator.Result) Report {
	report := Report{Errors: []string{}}
	report.add(0, "", res)
	return report
}

// Importer validates parsed attendance rows against a snapshot.
type Importer struct {
	reg    *registry.Registry
	fields *fields.Validator
	rules  *business.Validator
}

type options struct {
	now func() time.Time
}

// Option configures an Importer.
type Option func(*options)

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewImporter returns an importer. A nil reg uses registry defaults.
func NewImporter(reg *registry.Registry, opts ...Option) *Importer {
	if reg == nil {
		reg = registry.New()
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Importer{
		reg:    reg,
		fields: fields.New(reg, fields.WithClock(o.now)),
		rules:  business.New(reg, business.WithClock(o.now)),
	}
}

// Validate checks every row and reports all failures. A file with more data
// rows than the configured ceiling is rejected as a whole.
func (im *Importer) Validate(rows []Row, snap records.Snapshot) Report {
	report := Report{Valid: true, TotalRows: len(rows), Errors: []string{}}

	limit := im.reg.Policy().ImportMaxRows
	if len(rows) > limit {
		report.add(0, "", validator.Fail(validator.KindBatchSize, "import.too_many_rows",
			fmt.Sprintf("File contains %d rows; at most %d rows can be imported at once", len(rows), limit),
			map[string]any{"count": len(rows), "max": limit}))
		return report
	}
	if len(rows) == 0 {
		report.add(0, "", validator.Fail(validator.KindBatchSize, "import.empty",
			"File contains no attendance rows", nil))
		return report
	}

	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		if im.validateRow(&report, row, snap, seen) {
			report.ValidRows++
		}
	}
	return report
}

// ValidateFile reads an uploaded file and validates its rows. A sheet with
// no header or without the required columns yields a failing report; a file
// that cannot be read yields an error.
func (im *Importer) ValidateFile(r io.Reader, format Format, snap records.Snapshot) (Report, error) {
	cells, err := Read(r, format)
	if err != nil {
		return Report{}, err
	}

	if len(cells) == 0 {
		return Rejected(validator.Fail(validator.KindFormat, "import.missing_header",
			"File has no header row", nil)), nil
	}
	if _, missing := headerIndex(cells[0]); len(missing) > 0 {
		return Rejected(validator.Fail(validator.KindFormat, "import.missing_columns",
			"Missing required columns: "+strings.Join(missing, ", "),
			map[string]any{"columns": missing})), nil
	}

	rows, err := Parse(cells)
	if err != nil {
		return Report{}, err
	}
	return im.Validate(rows, snap), nil
}

func (im *Importer) validateRow(report *Report, row Row, snap records.Snapshot, seen map[string]int) bool {
	n := row.SheetRow()
	ok := true
	check := func(column string, res validator.Result) bool {
		passed := report.add(n, column, res)
		ok = ok && passed
		return passed
	}

	numberOK := check(ColStudentNumber, required(ColStudentNumber, row.StudentNumber))
	statusOK := check(ColStatus, required(ColStatus, row.Status))
	slotOK := check(ColTimeSlot, required(ColTimeSlot, row.TimeSlot))
	dateOK := check(ColDate, required(ColDate, row.Date))

	if statusOK {
		check(ColStatus, im.fields.AttendanceStatus(row.Status))
	}
	if slotOK {
		slotOK = check(ColTimeSlot, im.fields.TimeSlot(row.TimeSlot))
	}
	if dateOK {
		dateOK = check(ColDate, im.fields.Date("date", row.Date))
	}
	if row.Time != "" {
		check(ColTime, im.fields.Time("time", row.Time))
	}
	if row.Email != "" {
		check(ColEmail, im.fields.Email(row.Email))
	}
	check(ColNotes, im.fields.Notes(row.Notes))

	var (
		student records.Student
		subject records.Subject
		found   bool
	)
	if numberOK {
		student, found = snap.StudentByNumber(row.StudentNumber)
		number := strings.TrimSpace(row.StudentNumber)
		numberOK = check(ColStudentNumber, resolved(found, "validation.reference.student_number",
			fmt.Sprintf("Student number %s was not found", number), number))
	}
	subjectOK := true
	if row.SubjectCode != "" {
		subject, found = snap.SubjectByCode(row.SubjectCode)
		code := strings.TrimSpace(row.SubjectCode)
		subjectOK = check(ColSubjectCode, resolved(found, "validation.reference.subject_code",
			fmt.Sprintf("Subject code %s was not found", code), code))
		if numberOK && subjectOK && len(snap.Enrollments) > 0 && !snap.IsEnrolled(student.ID, subject.ID) {
			check(ColSubjectCode, validator.Fail(validator.KindReferentialIntegrity, "import.not_enrolled",
				fmt.Sprintf("Student %s is not enrolled in %s", student.StudentNumber, subject.Code),
				map[string]any{"student_number": student.StudentNumber, "code": subject.Code}))
		}
	}

	if dateOK {
		dateOK = check(ColDate, im.rules.AttendanceDate(row.Date, false))
	}

	if numberOK && subjectOK && slotOK && dateOK {
		slot, _ := records.ParseTimeSlot(row.TimeSlot)
		key := business.AttendanceKey{
			StudentID: student.ID,
			SubjectID: subject.ID,
			Date:      strings.TrimSpace(row.Date),
			TimeSlot:  slot,
		}
		fileKey := im.duplicateKey(key)
		if first, dup := seen[fileKey]; dup {
			check(ColDate, validator.Fail(validator.KindBatchDuplicate, "import.duplicate_row",
				fmt.Sprintf("Duplicate of row %d", first), map[string]any{"first_row": first}))
		} else {
			seen[fileKey] = n
			check(ColDate, im.rules.DuplicateAttendance(key, snap.Attendance, ""))
		}
	}
	return ok
}

// duplicateKey mirrors the policy used by business.DuplicateAttendance.
func (im *Importer) duplicateKey(k business.AttendanceKey) string {
	policy := im.reg.Policy().DuplicateKey
	parts := []string{k.StudentID.String(), k.Date}
	if policy.Subject {
		parts = append(parts, k.SubjectID.String())
	}
	if policy.TimeSlot {
		parts = append(parts, string(k.TimeSlot))
	}
	return strings.Join(parts, "|")
}

func required(column, value string) validator.Result {
	if strings.TrimSpace(value) != "" {
		return validator.Pass()
	}
	return validator.Fail(validator.KindFormat, "validation.required", column+" is required",
		map[string]any{"field": column})
}

func resolved(found bool, key, message, value string) validator.Result {
	if found {
		return validator.Pass()
	}
	return validator.Fail(validator.KindReferentialIntegrity, key, message, map[string]any{"value": value})
}
