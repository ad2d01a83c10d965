// Package forms composes field and business validators into one report per
// entity submission.
//
// Every check runs; nothing short-circuits, so a single submission reports
// all of its problems at once. A business check only runs when the fields it
// reads passed their own checks, which keeps one bad value from producing a
// second, derived message.
//
//	fv := forms.New(reg)
//	res := fv.Student(input, snapshot, false)
//	if !res.Valid {
//		for field, msg := range res.Errors {
//			// render msg next to field
//		}
//	}
//
// Submissions can also be dispatched by kind:
//
//	sub, err := forms.NewSubmission(forms.KindAttendance, body, false)
//	if err != nil {
//		return err
//	}
//	res := fv.Validate(sub, snapshot)
package forms
