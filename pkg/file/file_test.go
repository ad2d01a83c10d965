package file_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rollcall/pkg/fields"
	"github.com/dmitrymomot/rollcall/pkg/file"
	"github.com/dmitrymomot/rollcall/pkg/registry"
)

var (
	pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}
	zipBytes = append([]byte("PK\x03\x04"), make([]byte, 64)...)
	csvBytes = []byte("Student Number,Status,Time Slot,Date\n24-0001,present,arrival,2025-01-15\n")
)

func upload(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := &http.Request{
		Method: http.MethodPost,
		Header: http.Header{"Content-Type": []string{writer.FormDataContentType()}},
		Body:   io.NopCloser(body),
	}
	require.NoError(t, req.ParseMultipartForm(32<<20))
	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		filename    string
		contentType string
		content     []byte
		want        string
	}{
		{name: "png", filename: "photo.png", contentType: "image/png", content: pngBytes, want: registry.MIMEPNG},
		{name: "renamed png keeps sniffed type", filename: "report.pdf", contentType: "application/pdf", content: pngBytes, want: registry.MIMEPNG},
		{name: "xlsx declared", filename: "attendance.xlsx", contentType: registry.MIMEXLSX, content: zipBytes, want: registry.MIMEXLSX},
		{name: "xlsx by extension", filename: "attendance.xlsx", contentType: "application/octet-stream", content: zipBytes, want: registry.MIMEXLSX},
		{name: "zip cannot claim to be an image", filename: "photo.png", contentType: "image/png", content: zipBytes, want: "application/zip"},
		{name: "csv declared", filename: "attendance.csv", contentType: "text/csv; charset=utf-8", content: csvBytes, want: registry.MIMECSV},
		{name: "csv by extension", filename: "attendance.csv", contentType: "application/octet-stream", content: csvBytes, want: registry.MIMECSV},
		{name: "text cannot claim to be an image", filename: "photo.png", contentType: "image/png", content: csvBytes, want: "text/plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info, err := file.Inspect(upload(t, tt.filename, tt.contentType, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.MIMEType)
			assert.Equal(t, int64(len(tt.content)), info.Size)
		})
	}

	t.Run("nil header", func(t *testing.T) {
		_, err := file.Inspect(nil)
		assert.ErrorIs(t, err, file.ErrNilFileHeader)
	})

	t.Run("filename is sanitized", func(t *testing.T) {
		info, err := file.Inspect(upload(t, `..\..\photo.png`, "image/png", pngBytes))
		require.NoError(t, err)
		assert.Equal(t, "photo.png", info.Filename)
		assert.Equal(t, ".png", info.Extension)
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()
	fv := fields.New(registry.New(registry.WithFileLimit(registry.CategoryProfilePhoto, 8, registry.MIMEPNG)))

	assert.True(t, file.Check(fv, upload(t, "a.csv", "text/csv", csvBytes), registry.CategorySpreadsheet).Valid)
	assert.True(t, file.Check(fv, upload(t, "a.xlsx", registry.MIMEXLSX, zipBytes), registry.CategorySpreadsheet).Valid)

	res := file.Check(fv, upload(t, "a.png", "image/png", pngBytes), registry.CategorySpreadsheet)
	assert.Equal(t, "validation.file.type", res.Key)

	res = file.Check(fv, upload(t, "a.png", "image/png", pngBytes), registry.CategoryProfilePhoto)
	assert.Equal(t, "validation.file.too_large", res.Key)

	res = file.Check(fv, upload(t, "empty.csv", "text/csv", nil), registry.CategorySpreadsheet)
	assert.Equal(t, "File is empty", res.Error)

	res = file.Check(fv, nil, registry.CategoryDocument)
	assert.Equal(t, "File is required", res.Error)
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"../../../etc/passwd":    "passwd",
		`C:\Windows\file.txt`:    "file.txt",
		"":                       "unnamed",
		"..":                     "unnamed",
		"attendance\x00.xlsx":    "attendance.xlsx",
		"roster - Section A.csv": "roster - Section A.csv",
	}
	for input, want := range tests {
		assert.Equal(t, want, file.SanitizeFilename(input), input)
	}
}
