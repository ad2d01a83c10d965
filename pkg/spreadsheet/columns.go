package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Column headers, in sheet order.
const (
	ColStudentNumber = "Student Number"
	ColFirstName     = "First Name"
	ColLastName      = "Last Name"
	ColEmail         = "Email"
	ColSubjectCode   = "Subject Code"
	ColSubjectName   = "Subject Name"
	ColStatus        = "Status"
	ColTimeSlot      = "Time Slot"
	ColDate          = "Date"
	ColTime          = "Time"
	ColNotes         = "Notes"
)

// Columns returns every header in sheet order.
func Columns() []string {
	return []string{
		ColStudentNumber, ColFirstName, ColLastName, ColEmail,
		ColSubjectCode, ColSubjectName,
		ColStatus, ColTimeSlot, ColDate, ColTime, ColNotes,
	}
}

// RequiredColumns returns the headers an import cannot do without.
func RequiredColumns() []string {
	return []string{ColStudentNumber, ColStatus, ColTimeSlot, ColDate}
}

// Format is a spreadsheet file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ParseFormat accepts a format name, a file name or a MIME type.
func ParseFormat(s string) (Format, error) {
	s, _, _ = strings.Cut(strings.ToLower(strings.TrimSpace(s)), ";")
	s = strings.TrimSpace(s)
	if ext := filepath.Ext(s); ext != "" && !strings.Contains(s, "/") {
		s = strings.TrimPrefix(ext, ".")
	}
	switch s {
	case "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return FormatXLSX, nil
	case "csv", "text/csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimPrefix(h, "\ufeff")), " "))
}
