package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// JSON creates a binder that decodes an application/json body into v.
// Unknown top-level fields and trailing data are rejected.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return errors.Join(ErrFailedToParseJSON, err)
		}
		if err := requireMediaType(r, "application/json"); err != nil {
			return err
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return errors.Join(ErrFailedToParseJSON, err)
		}
		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}
		return nil
	}
}

func requireMediaType(r *http.Request, want ...string) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected %v", ErrMissingContentType, want)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return errors.Join(ErrUnsupportedMediaType, err)
	}
	for _, w := range want {
		if mediaType == w {
			return nil
		}
	}
	return fmt.Errorf("%w: got %s, expected %v", ErrUnsupportedMediaType, mediaType, want)
}
