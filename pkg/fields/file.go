package fields

import (
	"fmt"
	"mime"
	"slices"
	"strings"

	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/sanitizer"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// File validates an upload's size and MIME type against its category limits.
// Media-type parameters such as charset are ignored.
func (v *Validator) File(category registry.FileCategory, size int64, mimeType string) validator.Result {
	const field = "file"
	limit, ok := v.reg.FileLimit(category)
	if !ok {
		return validator.Fail(validator.KindFormat, "validation.file.category",
			fmt.Sprintf("Unknown file category %q", category),
			map[string]any{"field": field, "category": string(category)})
	}

	maxMB := limit.MaxBytes / registry.MB
	mediaType := normalizeMediaType(mimeType)

	return validator.First(
		validator.Check(field, validator.KindRange, "validation.file.empty", "File is empty", nil,
			func() bool { return size > 0 }),
		validator.Check(field, validator.KindRange, "validation.file.too_large",
			fmt.Sprintf("File size must not exceed %dMB", maxMB),
			map[string]any{"max_mb": maxMB},
			func() bool { return size <= limit.MaxBytes }),
		validator.Check(field, validator.KindFormat, "validation.file.type",
			fmt.Sprintf("File type %q is not allowed. Allowed types: %s", mediaType, strings.Join(limit.MIMETypes, ", ")),
			map[string]any{"type": mediaType, "allowed": strings.Join(limit.MIMETypes, ", ")},
			func() bool { return slices.Contains(limit.MIMETypes, mediaType) }),
	)
}

func normalizeMediaType(raw string) string {
	if mt, _, err := mime.ParseMediaType(raw); err == nil {
		return mt
	}
	return sanitizer.Lower(sanitizer.Trim(raw))
}

// SearchTerm validates free-text search input. An empty term is valid.
func (v *Validator) SearchTerm(raw string) validator.Result {
	const field = "search"
	return validator.First(validator.MaxLen(field, sanitizer.SearchTerm(raw), v.reg.Bounds().SearchMax))
}
