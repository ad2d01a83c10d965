package handler

import (
	"github.com/dmitrymomot/rollcall/pkg/spreadsheet"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

// The engine produces English messages; these localize them when the API has
// a translator.

func (a *API) result(lang string, r validator.Result) validator.Result {
	if a.tr == nil {
		return r
	}
	return a.tr.TranslateResult(lang, r)
}

func (a *API) form(lang string, f validator.FormResult) validator.FormResult {
	if a.tr == nil {
		return f
	}
	return a.tr.TranslateForm(lang, f)
}

func (a *API) deletion(lang string, d validator.DeletionCheck) validator.DeletionCheck {
	if a.tr == nil {
		return d
	}
	return a.tr.TranslateDeletion(lang, d)
}

func (a *API) report(lang string, rep spreadsheet.Report) spreadsheet.Report {
	if a.tr == nil {
		return rep
	}
	return a.tr.TranslateReport(lang, rep)
}
