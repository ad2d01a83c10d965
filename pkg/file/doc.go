// Package file inspects multipart uploads before they are accepted.
//
// Inspect determines an upload's size and MIME type from its content rather
// than trusting the client. http.DetectContentType reads the first 512 bytes;
// when that only yields a generic container (zip, octet-stream) or plain text,
// the declared Content-Type and then the file extension refine the answer, but
// only within the same family. A PNG renamed to report.pdf is still reported
// as image/png, while an .xlsx workbook, which sniffs as application/zip, is
// reported as a spreadsheet.
//
// Check runs the inspection result through the category limits held by the
// registry:
//
//	res := file.Check(fv, fh, registry.CategorySpreadsheet)
//	if !res.Valid {
//		// res.Error: "File size must not exceed 10MB"
//	}
package file
