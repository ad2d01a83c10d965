package validator

import "maps"

// Result is the outcome of a single field or business check.
type Result struct {
	Valid  bool           `json:"is_valid"`
	Error  string         `json:"error,omitempty"`
	Kind   Kind           `json:"kind,omitempty"`
	Key    string         `json:"key,omitempty"`
	Params map[string]any `json:"params,omitempty"`
}

// Pass returns a successful result.
func Pass() Result {
	return Result{Valid: true}
}

// Fail builds a failing result.
func Fail(kind Kind, key, message string, params map[string]any) Result {
	return Result{
		Valid:  false,
		Error:  message,
		Kind:   kind,
		Key:    key,
		Params: params,
	}
}

// Issue attaches the result to a field. The result must be failing.
func (r Result) Issue(field string) ValidationError {
	return ValidationError{
		Field:             field,
		Message:           r.Error,
		Kind:              r.Kind,
		TranslationKey:    r.Key,
		TranslationValues: r.Params,
	}
}

// FormResult is the aggregated per-field report for one entity submission.
//
// Errors keeps one message per field and a later failure for the same field
// replaces the earlier one. Issues keeps every failure in the order it was
// recorded, so callers that need all messages per field can use Messages.
type FormResult struct {
	Valid  bool              `json:"is_valid"`
	Errors map[string]string `json:"errors"`
	Issues ValidationErrors  `json:"issues,omitempty"`
}

// NewFormResult returns an empty, valid report.
func NewFormResult() FormResult {
	return FormResult{Valid: true, Errors: map[string]string{}}
}

// Add records r under field when r is failing and reports whether r passed.
func (f *FormResult) Add(field string, r Result) bool {
	if r.Valid {
		return true
	}
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	f.Valid = false
	f.Errors[field] = r.Error
	f.Issues = append(f.Issues, r.Issue(field))
	return false
}

// Merge copies every failure of other into f, keeping other's order.
func (f *FormResult) Merge(other FormResult) {
	for _, issue := range other.Issues {
		f.Add(issue.Field, issue.Result())
	}
}

// Has reports whether field has at least one failure.
func (f FormResult) Has(field string) bool {
	_, ok := f.Errors[field]
	return ok
}

// Messages returns every failure message recorded for field.
func (f FormResult) Messages(field string) []string {
	return f.Issues.Get(field)
}

// Err returns the failures as ValidationErrors, or nil when the form is valid.
func (f FormResult) Err() error {
	if f.Valid || len(f.Issues) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(f.Issues))
	copy(out, f.Issues)
	return out
}

// DeletionCheck is the outcome of a referential-integrity guard.
type DeletionCheck struct {
	CanDelete       bool           `json:"can_delete"`
	Reason          string         `json:"reason,omitempty"`
	RelatedEntities []string       `json:"related_entities,omitempty"`
	Kind            Kind           `json:"kind,omitempty"`
	Key             string         `json:"key,omitempty"`
	Params          map[string]any `json:"params,omitempty"`
}

// Allowed returns a check that permits deletion.
func Allowed() DeletionCheck {
	return DeletionCheck{CanDelete: true}
}

// Blocked returns a check that forbids deletion because of related records.
func Blocked(key, reason string, related []string, params map[string]any) DeletionCheck {
	return DeletionCheck{
		CanDelete:       false,
		Reason:          reason,
		RelatedEntities: related,
		Kind:            KindReferentialIntegrity,
		Key:             key,
		Params:          maps.Clone(params),
	}
}
