package config

// GetDefaultConfigTemplate returns a fully commented config template that
// helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# relkit Configuration
# Values can be overridden per key via RELKIT_* environment variables,
# e.g. RELKIT_MODEL or RELKIT_MAX_TOKENS.

# Project settings
name: ""                              # Project name for prompts (empty = repo directory name)
changelog: CHANGELOG.md               # Changelog document path
prompts_dir: .relkit/prompts          # Prompt template overrides (changelog.md, system.md)

# Text-generation settings
model: gpt-4o-mini                    # Model identifier
base_url: https://api.openai.com/v1   # OpenAI-compatible endpoint
api_key_env: OPENAI_API_KEY           # Env var holding the API key
temperature: 0.3                      # Sampling temperature (0-2)
max_tokens: 1200                      # Completion length cap per entry
timeout: 120                          # Seconds per generation call (0 = no timeout)
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"name":        "",
		"changelog":   "CHANGELOG.md",
		"prompts_dir": ".relkit/prompts",
		// Text-generation defaults mirror internal/llm.Options.
		"model":       "gpt-4o-mini",
		"base_url":    "https://api.openai.com/v1",
		"api_key_env": "OPENAI_API_KEY",
		"temperature": 0.3,
		"max_tokens":  1200,
		// timeout: Seconds per generation call. Generation of a large diff
		// can legitimately take a while; 0 disables the client timeout.
		"timeout": 120,
	}
}
