// Package binder fills request structs from JSON bodies, multipart forms,
// query strings and chi path parameters.
//
// Every binder has the signature func(*http.Request, any) error so several
// can be chained over one struct, each handling only its own tag:
//
//	type ImportRequest struct {
//	    Snapshot string                `form:"snapshot"`
//	    File     *multipart.FileHeader `file:"file"`
//	    Lang     string                `query:"lang"`
//	}
//
//	binders := []func(*http.Request, any) error{
//	    binder.Form(),
//	    binder.Query(),
//	}
//
// Fields without the binder's tag are left alone. A tag of "-" skips the
// field explicitly.
//
// # Errors
//
// Failures wrap one of the package sentinels (ErrFailedToParseJSON,
// ErrFailedToParseForm, ErrFailedToParseQuery, ErrFailedToParsePath,
// ErrUnsupportedMediaType, ErrMissingContentType). The underlying cause is
// joined in, so an *http.MaxBytesError from a size-limited body stays
// reachable through errors.As.
//
// Request size limits are not enforced here; install http.MaxBytesReader in
// middleware before binding.
package binder
