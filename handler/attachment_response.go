package handler

import (
	"mime"
	"net/http"
	"strconv"
)

type attachmentResponse struct {
	filename    string
	contentType string
	body        []byte
}

func (a attachmentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", a.contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(a.body)))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(a.body)
	return err
}

// Attachment sends body as a file download named filename.
func Attachment(filename, contentType string, body []byte) Response {
	return attachmentResponse{filename: filename, contentType: contentType, body: body}
}
