package changelog

import (
	_ "embed"
)

//go:embed templates/changelog.md
var defaultTemplate string

//go:embed templates/system.md
var defaultSystemPrompt string

// DefaultTemplate returns the built-in changelog prompt template, used when
// no override is configured in the template source. Placeholders: {name},
// {version}, {log_diff}.
func DefaultTemplate() string {
	return defaultTemplate
}

// DefaultSystemPrompt returns the built-in system prompt for the
// text-generation service.
func DefaultSystemPrompt() string {
	return defaultSystemPrompt
}
