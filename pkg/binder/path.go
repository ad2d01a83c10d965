package binder

import "net/http"

// Path creates a binder for `path:"name"` tagged fields. The extractor
// resolves a parameter by name; with chi it is chi.URLParam.
//
//	r.Post("/students/{id}/deletion-check", handler.Wrap(h,
//	    handler.WithBinders(binder.Path(chi.URLParam), binder.JSON()),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rv, err := structValue(v, ErrFailedToParsePath)
		if err != nil {
			return err
		}
		rt := rv.Type()

		values := make(map[string][]string)
		for i := range rt.NumField() {
			name, ok := fieldName(rt.Field(i), "path")
			if !ok {
				continue
			}
			if value := extractor(r, name); value != "" {
				values[name] = []string{value}
			}
		}
		return bindToStruct(v, "path", values, ErrFailedToParsePath)
	}
}
