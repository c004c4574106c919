// Package config provides hierarchical configuration management for relkit
// using koanf. Configuration is loaded with priority: environment variables
// > project config (.relkit/config.yml) > user config
// (~/.config/relkit/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the relkit CLI tool configuration.
type Configuration struct {
	// Name is the project name substituted into prompt templates.
	// Empty means "derive from the repository root directory name".
	Name string `koanf:"name"`

	// Changelog is the changelog document path, relative to the
	// repository root unless absolute.
	Changelog string `koanf:"changelog"`

	// PromptsDir holds per-project prompt template overrides
	// (<dir>/changelog.md, <dir>/system.md).
	PromptsDir string `koanf:"prompts_dir"`

	// Model is the text-generation model identifier.
	Model string `koanf:"model"`

	// BaseURL of the OpenAI-compatible chat completions API.
	BaseURL string `koanf:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `koanf:"api_key_env"`

	// Temperature for sampling (0 to 2).
	Temperature float64 `koanf:"temperature"`

	// MaxTokens caps the completion length per generation call.
	MaxTokens int `koanf:"max_tokens"`

	// Timeout in seconds for a single text-generation exchange.
	Timeout int `koanf:"timeout"`
}

// TimeoutDuration returns the generation timeout as a time.Duration.
func (c *Configuration) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .relkit/config.yml).
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	userPath, err := UserConfigPath()
	if err == nil {
		if err := loadYAMLConfig(k, userPath, "user"); err != nil {
			return nil, err
		}
	}

	projectPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectPath = opts.ProjectConfigPath
	}
	if err := loadYAMLConfig(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("RELKIT_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadYAMLConfig validates and loads a YAML config file. A missing file is
// not an error; the lower-priority layers stand.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if !fileExists(path) {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Changelog = expandHomePath(cfg.Changelog)
	cfg.PromptsDir = expandHomePath(cfg.PromptsDir)

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: RELKIT_MAX_TOKENS -> max_tokens
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RELKIT_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
