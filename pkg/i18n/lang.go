package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is the source language of every validator message.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps how much of an Accept-Language header is parsed.
const maxAcceptLanguageLength = 4096

type weightedLang struct {
	tag string
	q   float64
}

// parseAcceptLanguageHeader returns the header's language tags, lowercased
// and ordered by descending quality. Malformed quality values count as 1.
func parseAcceptLanguageHeader(header string) []weightedLang {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var langs []weightedLang
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
				q = f
			}
		}
		langs = append(langs, weightedLang{tag: tag, q: q})
	}

	slices.SortStableFunc(langs, func(a, b weightedLang) int {
		return cmp.Compare(b.q, a.q)
	})
	return langs
}

// ParseAcceptLanguage picks the best supported language for header.
// Exact tags are tried first in quality order, then base languages
// ("es-MX" matches "es"). defaultLang is returned when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, l := range supportedLangs {
		supported[i] = strings.ToLower(l)
	}

	langs := parseAcceptLanguageHeader(header)
	for _, l := range langs {
		if slices.Contains(supported, l.tag) {
			return l.tag
		}
	}
	for _, l := range langs {
		if base, _, ok := strings.Cut(l.tag, "-"); ok && slices.Contains(supported, base) {
			return base
		}
	}
	return defaultLang
}
