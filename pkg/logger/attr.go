package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Role records a console role under the key "role".
func Role(role string) slog.Attr {
	if role == "" {
		return slog.Attr{}
	}
	return slog.String("role", role)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records a validation failure kind under the key "kind".
func Kind(k validator.Kind) slog.Attr {
	if k == "" {
		return slog.Attr{}
	}
	return slog.String("kind", string(k))
}

// Row records a spreadsheet row number under the key "row".
func Row(n int) slog.Attr {
	return slog.Int("row", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Issues records how many failures a check produced under the key "issues".
func Issues(n int) slog.Attr {
	return slog.Int("issues", n)
}
