package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	FilePath string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax checks if the YAML file has valid syntax before koanf
// merges it, so users get a file-scoped error instead of a merge failure.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // missing file falls back to defaults
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	// Empty file is valid and falls back to defaults.
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}
	return nil
}

// ValidateConfigValues checks the merged configuration for values that
// would make a run fail later in a confusing place.
func ValidateConfigValues(cfg *Configuration) error {
	if cfg.Changelog == "" {
		return &ValidationError{FilePath: "config", Field: "changelog", Message: "must not be empty"}
	}
	if cfg.Model == "" {
		return &ValidationError{FilePath: "config", Field: "model", Message: "must not be empty"}
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return &ValidationError{FilePath: "config", Field: "temperature",
			Message: fmt.Sprintf("must be between 0 and 2, got %v", cfg.Temperature)}
	}
	if cfg.MaxTokens < 0 {
		return &ValidationError{FilePath: "config", Field: "max_tokens",
			Message: fmt.Sprintf("must not be negative, got %d", cfg.MaxTokens)}
	}
	if cfg.Timeout < 0 {
		return &ValidationError{FilePath: "config", Field: "timeout",
			Message: fmt.Sprintf("must not be negative, got %d", cfg.Timeout)}
	}
	return nil
}
