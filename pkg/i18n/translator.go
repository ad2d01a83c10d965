package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"regexp"
	"slices"
	"strings"
)

//go:embed locales/*.yaml
var embedded embed.FS

// Catalog returns the embedded catalog filesystem.
func Catalog() fs.FS {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// Translator renders catalog templates. It is immutable after construction
// and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// Option is a function that configures a Translator instance.
type Option func(*Translator)

// WithDefaultLanguage sets the source language. Results in this language are
// returned unchanged.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger provides a customizable logger for the translator.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging controls whether missing translations
// are logged. Default is false.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// New returns a translator over the embedded catalog.
func New(ctx context.Context, opts ...Option) (*Translator, error) {
	return NewTranslator(ctx, Catalog(), opts...)
}

// NewTranslator loads every *.yaml and *.yml file at the root of fsys.
// Files may share a language; later files (in lexical order) override
// earlier ones key by key at the top level.
func NewTranslator(ctx context.Context, fsys fs.FS, opts ...Option) (*Translator, error) {
	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}

	translations := map[string]map[string]any{}
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		content, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, errors.Join(ErrFailedToReadCatalog, err)
		}
		parsed, err := parseYAML(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		for lang, tree := range parsed {
			lang = strings.ToLower(lang)
			if translations[lang] == nil {
				translations[lang] = map[string]any{}
			}
			maps.Copy(translations[lang], tree)
		}
	}
	if len(translations) == 0 {
		return nil, ErrEmptyCatalog
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// SupportedLanguages returns the catalog languages in sorted order.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// DefaultLanguage returns the source language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting key/value pairs from args into
// "%{name}" placeholders. It falls back to the default language, then to
// the key itself.
//
//	tr.T("es", "errors.forbidden", "role", "staff")
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	if tmpl, ok := t.lookup(lang, key); ok {
		return t.render(lang, tmpl, params)
	}
	if tmpl, ok := t.lookup(t.defaultLang, key); ok {
		return t.render(t.defaultLang, tmpl, params)
	}
	if t.missingLogMode {
		t.logger.Warn("Translation not found", "lang", lang, "key", key)
	}
	return key
}

// Tc translates a key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// message renders key in lang, or returns fallback when lang is the source
// language or the key is missing.
func (t *Translator) message(lang, key, fallback string, params map[string]any) string {
	lang = strings.ToLower(lang)
	if key == "" || lang == "" || lang == t.defaultLang {
		return fallback
	}
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Translation not found", "lang", lang, "key", key)
		}
		return fallback
	}
	return t.render(lang, tmpl, params)
}

// lookup traverses the language tree using dot-separated keys.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[strings.ToLower(lang)]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// render substitutes named placeholders. Unknown placeholders are kept.
func (t *Translator) render(lang, tmpl string, params map[string]any) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		val, ok := params[name]
		if !ok {
			return match
		}
		s := formatParam(val)
		if name == "field" {
			if label, ok := t.lookup(lang, "fields."+s); ok {
				return label
			}
		}
		return s
	})
}

func formatParam(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []int:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = fmt.Sprint(n)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(x, ", ")
	default:
		return fmt.Sprint(v)
	}
}
