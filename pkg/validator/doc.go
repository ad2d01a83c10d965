// Package validator holds the result model and rule primitives shared by every
// validation layer of rollcall.
//
// A Rule couples a lazy boolean Check with the ValidationError it produces on
// failure. Rules are evaluated either with First, which stops at the first
// failing rule and returns a single Result, or with Apply, which collects every
// failure into ValidationErrors.
//
// Three result shapes are produced by the engine:
//   - Result        – outcome of a single check (field or business rule)
//   - FormResult    – per-field report for one entity submission
//   - DeletionCheck – outcome of a referential-integrity guard
//
// Every failure carries a Kind from a closed taxonomy plus a translation key
// and named parameters, so callers can localize or branch on the category
// without parsing messages.
//
// # Usage
//
//	res := validator.First(
//	    validator.Required("first_name", name),
//	    validator.MinLen("first_name", name, 2),
//	    validator.MaxLen("first_name", name, 50),
//	)
//	if !res.Valid {
//	    fmt.Println(res.Error)
//	}
//
// Nothing in this package holds state; every helper is safe for concurrent use.
package validator
