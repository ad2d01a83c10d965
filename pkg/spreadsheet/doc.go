// Package spreadsheet implements the attendance import/export column contract.
//
// Sheets carry exactly these columns, in this order: Student Number, First
// Name, Last Name, Email, Subject Code, Subject Name, Status, Time Slot, Date,
// Time, Notes. Student Number, Status, Time Slot and Date are required on
// import; header matching ignores case and surrounding spaces.
//
// Import is a pipeline of Read, Parse and Importer.Validate. Every row-level
// failure is prefixed with the sheet row it came from, so the first data row
// below the header is reported as "Row 2":
//
//	raw, err := spreadsheet.Read(file, spreadsheet.FormatXLSX)
//	rows, err := spreadsheet.Parse(raw)
//	report := spreadsheet.NewImporter(reg).Validate(rows, snap)
//
// Export joins attendance to students and subjects and Write renders the
// result; reading a written sheet yields the same rows.
package spreadsheet
