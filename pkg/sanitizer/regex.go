package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	whitespaceRegex = regexp.MustCompile(`\s+`)

	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	eventAttrRegex   = regexp.MustCompile(`(?i)\s*\bon\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	jsProtocolRegex  = regexp.MustCompile(`(?i)javascript\s*:`)

	phoneSeparatorRegex = regexp.MustCompile(`[\s().-]`)
)
