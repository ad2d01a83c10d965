package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rollcall/pkg/sanitizer"
)

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "inner runs", input: "Juan   dela \t Cruz", expected: "Juan dela Cruz"},
		{name: "newlines", input: "\n Ana\r\nMaria \n", expected: "Ana Maria"},
		{name: "empty", input: "   ", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.CollapseWhitespace(tt.input))
		})
	}
}

func TestStripScripts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "script block", input: "a<script>alert(1)</script>b", expected: "ab"},
		{name: "multiline script", input: "a<SCRIPT type=\"x\">\nalert(1)\n</script >b", expected: "ab"},
		{name: "event handler", input: `<img src="x" onerror="alert(1)">`, expected: `<img src="x">`},
		{name: "unquoted handler", input: `<a onclick=steal()>x</a>`, expected: `<a>x</a>`},
		{name: "javascript protocol", input: "JavaScript :alert(1)", expected: "alert(1)"},
		{name: "nested protocol", input: "javajavascript:script:x", expected: "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripScripts(tt.input))
		})
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "José Rizal", sanitizer.Clean("  José   <b>Rizal</b> "))
	assert.Equal(t, "hello", sanitizer.Clean("<script>x</script>hello\x00"))
	// decomposed e + combining acute becomes the composed rune
	assert.Equal(t, "Jos\u00e9", sanitizer.Clean("Jose\u0301"))
}

func TestFormatters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ana.cruz@school.edu", sanitizer.Email("  Ana.Cruz@School.EDU "))
	assert.Equal(t, "MATH-101", sanitizer.Identifier(" math-101 "))
	assert.Equal(t, "24-0001", sanitizer.StudentNumber(" 24 -0001 "))
	assert.Equal(t, "+639171234567", sanitizer.Phone("+63 (917) 123-4567"))
	assert.Equal(t, "ÉCOLE", sanitizer.Upper("école"))
	assert.Equal(t, "école", sanitizer.Lower("ÉCOLE"))
}

func TestEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a &amp; b &lt;c&gt;", sanitizer.Escape("a & b <c>"))
	assert.Equal(t, "a &amp; b", sanitizer.Escape("a &amp; b"))
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"  plain  text ",
		"<p>Hello <b>World</b></p>",
		`<img src=x onerror="alert('x')">`,
		"javajavascript:script:alert(1)",
		"Tom & Jerry's <notes>",
		"&lt;already&gt; escaped &amp; text",
		"Zoë  Saldaña\t\n",
		"<<b>a>",
		"José\x07",
		"&#106;avascript:alert(1)",
		"x on&#99;lick=alert(1)",
		"&amp;#106;avascript:alert(1)",
		"&lt;script&gt;alert(1)&lt;/script&gt;ok",
	}

	transforms := map[string]func(string) string{
		"Trim":               sanitizer.Trim,
		"CollapseWhitespace": sanitizer.CollapseWhitespace,
		"StripHTML":          sanitizer.StripHTML,
		"StripScripts":       sanitizer.StripScripts,
		"Escape":             sanitizer.Escape,
		"Clean":              sanitizer.Clean,
		"Sanitize":           sanitizer.Sanitize,
		"Email":              sanitizer.Email,
		"Identifier":         sanitizer.Identifier,
		"Name":               sanitizer.Name,
		"Phone":              sanitizer.Phone,
	}

	for name, fn := range transforms {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				once := fn(in)
				assert.Equal(t, once, fn(once), "input %q", in)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text is escaped", input: " Tom & Jerry ", expected: "Tom &amp; Jerry"},
		{name: "encoded protocol", input: "&#106;avascript:alert(1)", expected: "alert(1)"},
		{name: "encoded handler", input: "x on&#99;lick=alert(1)", expected: "x"},
		{name: "double encoded protocol", input: "&amp;#106;avascript:alert(1)", expected: "alert(1)"},
		{name: "encoded script block", input: "&lt;script&gt;alert(1)&lt;/script&gt;ok", expected: "ok"},
		{name: "markup", input: "<b>Ana</b> Cruz", expected: "Ana Cruz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := sanitizer.Sanitize(tt.input)
			assert.Equal(t, tt.expected, once)
			assert.Equal(t, once, sanitizer.Sanitize(once))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	normalize := sanitizer.Compose(sanitizer.Trim, sanitizer.Lower)
	assert.Equal(t, "abc", normalize("  ABC "))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}
