package forms

import "errors"

var (
	ErrUnknownSubmission = errors.New("forms: unknown submission kind")
	ErrInvalidSubmission = errors.New("forms: invalid submission payload")
)
