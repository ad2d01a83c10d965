package handler

import (
	"bytes"
	"fmt"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/spreadsheet"
)

type exportRequest struct {
	Format string `query:"format" json:"-"`
	// Attendance defaults to Snapshot.Attendance when empty.
	Attendance []records.Attendance `json:"attendance"`
	Snapshot   records.Snapshot     `json:"snapshot"`
}

// exportAttendance renders attendance marks in the import column layout so
// an exported file can be edited and imported again.
func (a *API) exportAttendance(ctx Context, req exportRequest) Response {
	format := spreadsheet.FormatXLSX
	if req.Format != "" {
		f, err := spreadsheet.ParseFormat(req.Format)
		if err != nil {
			return Fail(err)
		}
		format = f
	}

	attendance := req.Attendance
	if len(attendance) == 0 {
		attendance = req.Snapshot.Attendance
	}

	var buf bytes.Buffer
	if err := spreadsheet.Write(&buf, spreadsheet.Export(attendance, req.Snapshot), format); err != nil {
		return Fail(err)
	}

	name := fmt.Sprintf("attendance-%s.%s", a.now().In(a.reg.Location()).Format("2006-01-02"), format)
	return Attachment(name, format.ContentType(), buf.Bytes())
}
