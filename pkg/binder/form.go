package binder

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
)

// DefaultMaxMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const DefaultMaxMemory = 10 << 20 // 10 MB

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies.
//
// Supported struct tags:
//   - `form:"name"` binds form value "name" (strings, numbers, bools, slices, pointers)
//   - `file:"name"` binds uploaded file "name" (*multipart.FileHeader or a slice of them)
//
// Multipart temporary files are not removed here; the caller owns
// r.MultipartForm after binding.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := requireMediaType(r, "application/x-www-form-urlencoded", "multipart/form-data"); err != nil {
			return err
		}

		var (
			values map[string][]string
			files  map[string][]*multipart.FileHeader
		)
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			if !errors.Is(err, http.ErrNotMultipart) {
				return errors.Join(ErrFailedToParseForm, err)
			}
			if err := r.ParseForm(); err != nil {
				return errors.Join(ErrFailedToParseForm, err)
			}
		}
		values = r.PostForm
		if r.MultipartForm != nil {
			values = r.MultipartForm.Value
			files = r.MultipartForm.File
		}

		if err := bindToStruct(v, "form", values, ErrFailedToParseForm); err != nil {
			return err
		}
		return bindFiles(v, files)
	}
}

func bindFiles(v any, files map[string][]*multipart.FileHeader) error {
	rv, err := structValue(v, ErrFailedToParseForm)
	if err != nil {
		return err
	}
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		name, ok := fieldName(sf, "file")
		if !ok || !field.CanSet() {
			continue
		}
		headers := files[name]
		if len(headers) == 0 {
			continue
		}

		switch {
		case sf.Type == fileHeaderType:
			field.Set(reflect.ValueOf(headers[0]))
		case sf.Type.Kind() == reflect.Slice && sf.Type.Elem() == fileHeaderType:
			slice := reflect.MakeSlice(sf.Type, len(headers), len(headers))
			for j, fh := range headers {
				slice.Index(j).Set(reflect.ValueOf(fh))
			}
			field.Set(slice)
		default:
			return fmt.Errorf("%w: field %s: unsupported file field type %s", ErrFailedToParseForm, sf.Name, sf.Type)
		}
	}
	return nil
}
