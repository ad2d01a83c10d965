package i18n

import (
	"net/http"
	"strings"
)

// Middleware negotiates the response language and stores it in the request
// context. An explicit "lang" query parameter wins over Accept-Language when
// it names a supported language.
func Middleware(supported []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := strings.TrimSpace(r.URL.Query().Get("lang")); q != "" {
				lang = ParseAcceptLanguage(q, supported, "")
			}
			if lang == "" {
				lang = ParseAcceptLanguage(r.Header.Get("Accept-Language"), supported, DefaultLanguage)
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
