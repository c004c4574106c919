package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolateUserConfig keeps an existing user-level config file on the test
// machine from bleeding into the layered load.
func isolateUserConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolateUserConfig(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "CHANGELOG.md", cfg.Changelog)
	assert.Equal(t, filepath.Join(".relkit", "prompts"), filepath.FromSlash(cfg.PromptsDir))
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "OPENAI_API_KEY", cfg.APIKeyEnv)
	assert.InDelta(t, 0.3, cfg.Temperature, 0.0001)
	assert.Equal(t, 1200, cfg.MaxTokens)
	assert.Equal(t, 120, cfg.Timeout)
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	isolateUserConfig(t)
	path := writeProjectConfig(t, `
model: gpt-4o
changelog: docs/CHANGES.md
max_tokens: 800
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "docs/CHANGES.md", cfg.Changelog)
	assert.Equal(t, 800, cfg.MaxTokens)
	// Untouched keys keep their defaults.
	assert.Equal(t, "OPENAI_API_KEY", cfg.APIKeyEnv)
}

func TestLoad_EnvOverridesProjectConfig(t *testing.T) {
	isolateUserConfig(t)
	path := writeProjectConfig(t, "model: gpt-4o\n")
	t.Setenv("RELKIT_MODEL", "llama-local")
	t.Setenv("RELKIT_MAX_TOKENS", "99")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "llama-local", cfg.Model)
	assert.Equal(t, 99, cfg.MaxTokens)
}

func TestLoad_InvalidYAMLSyntax(t *testing.T) {
	isolateUserConfig(t)
	path := writeProjectConfig(t, "model: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML")
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	isolateUserConfig(t)
	path := writeProjectConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
}

func TestValidateConfigValues(t *testing.T) {
	t.Parallel()

	valid := func() *Configuration {
		return &Configuration{
			Changelog:   "CHANGELOG.md",
			Model:       "gpt-4o-mini",
			Temperature: 0.3,
			MaxTokens:   1200,
			Timeout:     120,
		}
	}

	tests := map[string]struct {
		mutate  func(*Configuration)
		wantErr string
	}{
		"valid config":          {mutate: func(c *Configuration) {}, wantErr: ""},
		"empty changelog":       {mutate: func(c *Configuration) { c.Changelog = "" }, wantErr: "changelog"},
		"empty model":           {mutate: func(c *Configuration) { c.Model = "" }, wantErr: "model"},
		"temperature too high":  {mutate: func(c *Configuration) { c.Temperature = 2.5 }, wantErr: "temperature"},
		"negative temperature":  {mutate: func(c *Configuration) { c.Temperature = -1 }, wantErr: "temperature"},
		"negative max tokens":   {mutate: func(c *Configuration) { c.MaxTokens = -1 }, wantErr: "max_tokens"},
		"negative timeout":      {mutate: func(c *Configuration) { c.Timeout = -1 }, wantErr: "timeout"},
		"zero timeout is valid": {mutate: func(c *Configuration) { c.Timeout = 0 }, wantErr: ""},
	}

	for name, tc := range tests {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.mutate(cfg)
			err := ValidateConfigValues(cfg)

			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestTimeoutDuration(t *testing.T) {
	t.Parallel()

	cfg := &Configuration{Timeout: 90}
	assert.Equal(t, "1m30s", cfg.TimeoutDuration().String())
}
