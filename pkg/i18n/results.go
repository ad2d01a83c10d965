package i18n

import (
	"maps"
	"strconv"

	"github.com/dmitrymomot/rollcall/pkg/spreadsheet"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// TranslateResult returns r with its message localized into lang.
func (t *Translator) TranslateResult(lang string, r validator.Result) validator.Result {
	if r.Valid {
		return r
	}
	r.Error = t.message(lang, r.Key, r.Error, r.Params)
	return r
}

// TranslateForm returns a copy of f with every message localized into lang.
// The per-field map is rebuilt from the issues so "last wins" still holds.
func (t *Translator) TranslateForm(lang string, f validator.FormResult) validator.FormResult {
	out := validator.FormResult{
		Valid:  f.Valid,
		Errors: make(map[string]string, len(f.Errors)),
	}
	maps.Copy(out.Errors, f.Errors)
	if len(f.Issues) > 0 {
		out.Issues = make(validator.ValidationErrors, len(f.Issues))
	}
	for i, issue := range f.Issues {
		issue.Message = t.message(lang, issue.TranslationKey, issue.Message, issue.TranslationValues)
		out.Issues[i] = issue
		out.Errors[issue.Field] = issue.Message
	}
	return out
}

// TranslateDeletion returns d with its reason localized into lang.
// Related-entity counts are left as they are.
func (t *Translator) TranslateDeletion(lang string, d validator.DeletionCheck) validator.DeletionCheck {
	if d.CanDelete {
		return d
	}
	d.Reason = t.message(lang, d.Key, d.Reason, d.Params)
	return d
}

// TranslateReport returns a copy of rep with every issue localized into lang.
// Row-level messages keep their row prefix.
func (t *Translator) TranslateReport(lang string, rep spreadsheet.Report) spreadsheet.Report {
	out := rep
	out.Errors = make([]string, len(rep.Errors))
	copy(out.Errors, rep.Errors)
	if len(rep.Issues) == 0 {
		return out
	}

	out.Issues = make([]spreadsheet.Issue, len(rep.Issues))
	for i, issue := range rep.Issues {
		msg := t.message(lang, issue.Key, "", issue.Params)
		if msg != "" {
			if issue.Row > 0 {
				msg = t.message(lang, "import.row", msg, map[string]any{"row": strconv.Itoa(issue.Row), "message": msg})
			}
			issue.Message = msg
		}
		out.Issues[i] = issue
		if len(out.Errors) == len(rep.Issues) {
			out.Errors[i] = issue.Message
		}
	}
	return out
}
