package sanitizer

import "html"

// maxPasses bounds the fixed-point loops below.
const maxPasses = 16

// StripHTML removes markup tags. Entities are left as they are.
func StripHTML(s string) string {
	return untilStable(s, func(v string) string {
		return htmlTagRegex.ReplaceAllString(v, "")
	})
}

// StripScripts removes <script> blocks, inline on*= handlers and javascript:
// protocols, repeating until nested fragments such as "javajavascript:script:"
// are gone too.
func StripScripts(s string) string {
	return untilStable(s, func(v string) string {
		v = scriptBlockRegex.ReplaceAllString(v, "")
		v = eventAttrRegex.ReplaceAllString(v, "")
		return jsProtocolRegex.ReplaceAllString(v, "")
	})
}

// Escape HTML-escapes s. Existing entities are decoded first so escaping an
// escaped string changes nothing.
func Escape(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}

// Clean is the default text pipeline: drop control characters, strip scripts
// and markup, normalize to NFC and collapse whitespace.
func Clean(s string) string {
	return untilStable(s, func(v string) string {
		return Apply(v,
			RemoveControlChars,
			StripScripts,
			StripHTML,
			NormalizeUnicode,
			CollapseWhitespace,
		)
	})
}

// Sanitize cleans s and escapes it for storage in markup-unaware sinks.
// Entities are decoded before cleaning so encoded vectors such as
// "&#106;avascript:" are stripped rather than revealed by the escape step.
func Sanitize(s string) string {
	return html.EscapeString(untilStable(s, func(v string) string {
		return Clean(html.UnescapeString(v))
	}))
}

func untilStable(s string, step func(string) string) string {
	for range maxPasses {
		next := step(s)
		if next == s {
			return next
		}
		s = next
	}
	return s
}
