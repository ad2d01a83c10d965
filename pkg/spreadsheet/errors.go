package spreadsheet

import "errors"

var (
	ErrUnsupportedFormat = errors.New("spreadsheet: unsupported format")
	ErrUnreadable        = errors.New("spreadsheet: file cannot be read")
	ErrNoSheets          = errors.New("spreadsheet: workbook has no sheets")
	ErrMissingHeader     = errors.New("spreadsheet: header row is missing")
	ErrMissingColumns    = errors.New("spreadsheet: required columns are missing")
	ErrWrite             = errors.New("spreadsheet: failed to write file")
)
