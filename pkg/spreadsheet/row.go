package spreadsheet

import (
	"fmt"
	"strings"
)

// Row is one attendance line. Number is the 1-based data row index; the sheet
// row, counting the header, is Number+1.
type Row struct {
	Number        int    `json:"row"`
	StudentNumber string `json:"student_number"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Email         string `json:"email,omitempty"`
	SubjectCode   string `json:"subject_code,omitempty"`
	SubjectName   string `json:"subject_name,omitempty"`
	Status        string `json:"status"`
	TimeSlot      string `json:"time_slot"`
	Date          string `json:"date"`
	Time          string `json:"time,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// SheetRow is the row number as shown by spreadsheet software.
func (r Row) SheetRow() int {
	return r.Number + 1
}

// Values returns the cells in Columns order.
func (r Row) Values() []string {
	return []string{
		r.StudentNumber, r.FirstName, r.LastName, r.Email,
		r.SubjectCode, r.SubjectName,
		r.Status, r.TimeSlot, r.Date, r.Time, r.Notes,
	}
}

func (r *Row) set(column, value string) {
	switch column {
	case ColStudentNumber:
		r.StudentNumber = value
	case ColFirstName:
		r.FirstName = value
	case ColLastName:
		r.LastName = value
	case ColEmail:
		r.Email = value
	case ColSubjectCode:
		r.SubjectCode = value
	case ColSubjectName:
		r.SubjectName = value
	case ColStatus:
		r.Status = value
	case ColTimeSlot:
		r.TimeSlot = value
	case ColDate:
		r.Date = value
	case ColTime:
		r.Time = value
	case ColNotes:
		r.Notes = value
	}
}

// Parse maps raw cells to rows using the header in rows[0]. Unknown columns
// are ignored and blank data rows are skipped without shifting the numbering
// of the rows after them.
func Parse(rows [][]string) ([]Row, error) {
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}
	index, missing := headerIndex(rows[0])
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	out := make([]Row, 0, len(rows)-1)
	for n, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		row := Row{Number: n + 1}
		for column, i := range index {
			if i < len(cells) {
				row.set(column, strings.TrimSpace(cells[i]))
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// headerIndex maps known columns to their first position in header and
// lists the required columns it lacks.
func headerIndex(header []string) (map[string]int, []string) {
	known := make(map[string]string, len(Columns()))
	for _, c := range Columns() {
		known[normalizeHeader(c)] = c
	}
	index := make(map[string]int)
	for i, h := range header {
		if column, ok := known[normalizeHeader(h)]; ok {
			if _, dup := index[column]; !dup {
				index[column] = i
			}
		}
	}

	var missing []string
	for _, c := range RequiredColumns() {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	return index, missing
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
