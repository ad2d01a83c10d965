package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

// Read returns the raw cells of the first sheet of an XLSX workbook or of a
// CSV file. A UTF-8 byte order mark at the start of a CSV file is dropped.
func Read(r io.Reader, format Format) ([][]string, error) {
	switch format {
	case FormatXLSX:
		return readXLSX(r)
	case FormatCSV:
		return readCSV(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Join(ErrUnreadable, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Join(ErrUnreadable, err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrUnreadable, err)
	}
	cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Join(ErrUnreadable, err)
	}
	return rows, nil
}

// Write renders a header plus rows in the given format.
func Write(w io.Writer, rows []Row, format Format) error {
	switch format {
	case FormatXLSX:
		return writeXLSX(w, rows)
	case FormatCSV:
		return writeCSV(w, rows)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func writeXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return errors.Join(ErrWrite, err)
	}

	header := Columns()
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return errors.Join(ErrWrite, err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Join(ErrWrite, err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return errors.Join(ErrWrite, err)
	}
	if err := f.SetColWidth(sheetName, "A", "K", 16); err != nil {
		return errors.Join(ErrWrite, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Join(ErrWrite, err)
		}
		values := row.Values()
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return errors.Join(ErrWrite, err)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	records := make([][]string, 0, len(rows)+1)
	records = append(records, Columns())
	for _, row := range rows {
		records = append(records, row.Values())
	}
	if err := cw.WriteAll(records); err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}
