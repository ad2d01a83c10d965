package i18n

import "errors"

var (
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrFailedToReadCatalog  = errors.New("failed to read translation catalog")
	ErrEmptyCatalog         = errors.New("no translations found in catalog")
)
