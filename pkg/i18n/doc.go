// Package i18n localizes validation outcomes.
//
// Every failing result carries a translation key and named parameters next to
// its English message. A Translator loads YAML catalogs keyed by language and
// renders the key's template, substituting "%{name}" placeholders. The
// "field" parameter is itself translated through "fields.<name>".
//
// English is the source language: its messages are produced by the
// validators directly, so TranslateResult returns them unchanged. For any
// other language a missing key also falls back to the English message.
//
// Basic usage:
//
//	tr, err := i18n.New(ctx)
//	if err != nil {
//		return err
//	}
//	lang := i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"), tr.SupportedLanguages(), i18n.DefaultLanguage)
//	localized := tr.TranslateForm(lang, result)
//
// The embedded catalog ships "en" and "es". NewTranslator accepts any fs.FS
// of *.yaml files with the same layout:
//
//	es:
//	  validation:
//	    required: "%{field} es obligatorio"
//	  fields:
//	    email: "Correo electrónico"
package i18n
