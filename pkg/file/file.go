package file

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmitrymomot/rollcall/pkg/fields"
	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Info describes an inspected upload.
type Info struct {
	Filename  string `json:"filename"`
	Extension string `json:"extension,omitempty"`
	Size      int64  `json:"size"`
	// MIMEType is the resolved type used for validation.
	MIMEType string `json:"mime_type"`
	Sniffed  string `json:"sniffed,omitempty"`
	Declared string `json:"declared,omitempty"`
}

const (
	mimeZip   = "application/zip"
	mimeOctet = "application/octet-stream"
)

var (
	extensionTypes = map[string]string{
		".jpg":  registry.MIMEJPEG,
		".jpeg": registry.MIMEJPEG,
		".png":  registry.MIMEPNG,
		".webp": registry.MIMEWebP,
		".gif":  registry.MIMEGIF,
		".pdf":  registry.MIMEPDF,
		".doc":  registry.MIMEDoc,
		".docx": registry.MIMEDocx,
		".txt":  registry.MIMEText,
		".xlsx": registry.MIMEXLSX,
		".xls":  registry.MIMEXLS,
		".csv":  registry.MIMECSV,
	}

	// Office Open XML documents are zip archives.
	zipContainers = []string{registry.MIMEXLSX, registry.MIMEDocx}
)

// Inspect reads the start of the upload to determine its MIME type.
// The file position is not retained; callers open the header again to read it.
func Inspect(fh *multipart.FileHeader) (Info, error) {
	if fh == nil {
		return Info{}, ErrNilFileHeader
	}

	sniffed, err := sniff(fh)
	if err != nil {
		return Info{}, err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	declared := mediaType(fh.Header.Get("Content-Type"))
	return Info{
		Filename:  SanitizeFilename(fh.Filename),
		Extension: ext,
		Size:      fh.Size,
		MIMEType:  resolve(sniffed, declared, extensionTypes[ext]),
		Sniffed:   sniffed,
		Declared:  declared,
	}, nil
}

// Check inspects fh and validates it against the limits of category.
func Check(fv *fields.Validator, fh *multipart.FileHeader, category registry.FileCategory) validator.Result {
	if fh == nil {
		return validator.Fail(validator.KindFormat, "validation.file.required", "File is required",
			map[string]any{"field": "file"})
	}
	info, err := Inspect(fh)
	if err != nil {
		return validator.Fail(validator.KindFormat, "validation.file.unreadable", "File could not be read",
			map[string]any{"field": "file"})
	}
	return fv.File(category, info.Size, info.MIMEType)
}

func sniff(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	// 512 bytes is the maximum http.DetectContentType reads
	buffer := make([]byte, 512)
	n, err := io.ReadFull(f, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return mediaType(http.DetectContentType(buffer[:n])), nil
}

// resolve refines a generic sniffed type with the declared or extension
// type, never crossing families.
func resolve(sniffed, declared, byExtension string) string {
	candidates := []string{declared, byExtension}
	pick := func(accept func(string) bool) string {
		for _, c := range candidates {
			if c != "" && accept(c) {
				return c
			}
		}
		return sniffed
	}

	switch {
	case sniffed == mimeZip:
		return pick(func(c string) bool { return slices.Contains(zipContainers, c) })
	case sniffed == mimeOctet:
		return pick(func(c string) bool { return c != mimeOctet && !strings.HasPrefix(c, "text/") })
	case strings.HasPrefix(sniffed, "text/"):
		return pick(func(c string) bool { return strings.HasPrefix(c, "text/") })
	}
	return sniffed
}

func mediaType(raw string) string {
	if raw == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(raw); err == nil {
		return mt
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// SanitizeFilename removes any path components and dangerous characters from a filename.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
