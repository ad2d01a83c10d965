package i18n

import (
	"context"
	"strings"
)

type localeKey struct{}

// SetLocale stores the negotiated response language in ctx. Tags are trimmed
// and lowercased so "ES" and "es" share catalog lookups. A blank tag leaves
// ctx unchanged.
func SetLocale(ctx context.Context, locale string) context.Context {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return ctx
	}
	return context.WithValue(ctx, localeKey{}, locale)
}

// GetLocale returns the language stored by SetLocale. Requests that never
// passed through Middleware, such as the CLI or direct engine calls, get
// DefaultLanguage, in which validator messages are already written.
func GetLocale(ctx context.Context) string {
	if locale, ok := ctx.Value(localeKey{}).(string); ok {
		return locale
	}
	return DefaultLanguage
}
