package registry

// FileCategory names an upload slot with its own size and type limits.
type FileCategory string

const (
	CategoryProfilePhoto FileCategory = "profile_photo"
	CategoryDocument     FileCategory = "document"
	CategorySpreadsheet  FileCategory = "spreadsheet"
)

// MB is one megabyte as used by upload limits.
const MB int64 = 1024 * 1024

const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEWebP = "image/webp"
	MIMEGIF  = "image/gif"
	MIMEPDF  = "application/pdf"
	MIMEDoc  = "application/msword"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEXLS  = "application/vnd.ms-excel"
	MIMECSV  = "text/csv"
)

// FileLimit caps an upload category.
type FileLimit struct {
	MaxBytes  int64
	MIMETypes []string
}

func defaultFileLimits() map[FileCategory]FileLimit {
	return map[FileCategory]FileLimit{
		CategoryProfilePhoto: {
			MaxBytes:  5 * MB,
			MIMETypes: []string{MIMEJPEG, MIMEPNG, MIMEWebP, MIMEGIF},
		},
		CategoryDocument: {
			MaxBytes:  25 * MB,
			MIMETypes: []string{MIMEPDF, MIMEDoc, MIMEDocx, MIMEText, MIMEJPEG, MIMEPNG},
		},
		CategorySpreadsheet: {
			MaxBytes:  10 * MB,
			MIMETypes: []string{MIMEXLSX, MIMEXLS, MIMECSV},
		},
	}
}
