// Package handler serves the pre-flight validation API: typed handlers,
// request binding, JSON responses and the error envelope.
//
// # Typed handlers
//
// A HandlerFunc receives a Context and a request struct filled by binders,
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type checkRequest struct {
//		ID       records.ID       `path:"id"`
//		Snapshot records.Snapshot `json:"snapshot"`
//	}
//
//	h := handler.HandlerFunc[handler.Context, checkRequest](
//		func(ctx handler.Context, req checkRequest) handler.Response {
//			return handler.JSON(deletion.Student(req.ID, nil, nil))
//		},
//	)
//
//	r.Post("/students/{id}/deletion-check", handler.Wrap(h,
//		handler.WithBinders[handler.Context, checkRequest](binder.Path(chi.URLParam), binder.JSON()),
//	))
//
// # Errors
//
// Binding failures and Responses created with Fail are passed to the
// ErrorHandler. NewErrorHandler maps them to a status code and writes
//
//	{"error": {"code": "forbidden", "message": "..."}}
//
// with the message localized into the request language. Validation outcomes
// are not errors: a failing check is answered with 200 and the result body.
//
// # API
//
// NewAPI wires the validators, the authorizer and the translator behind a
// chi router. Every /v1 route requires a permission for the console role
// named in the X-Console-Role header.
package handler
