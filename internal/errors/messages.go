package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the relkit CLI.
// These templates ensure consistent, actionable error messages.

// NotAGitRepository creates an error when the working directory has no repository.
func NotAGitRepository(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("not a git repository: %s", path),
		"Run relkit from inside a git working tree",
		"Or point it at one with: relkit --repo <path>",
	)
}

// NoVersionsFound creates an error when the repository carries no version tags.
func NoVersionsFound() *CLIError {
	return NewNotFoundError(
		"no semantic version tags found in the repository",
		"Tag a release first: git tag v0.1.0",
		"List existing tags with: git tag --list",
	)
}

// VersionNotFound creates an error when a requested version is not tagged.
func VersionNotFound(version string, available []string) *CLIError {
	remediation := []string{
		"Check available versions with: relkit tags",
	}
	if len(available) > 0 {
		remediation = append(remediation,
			fmt.Sprintf("Known versions: %s", strings.Join(available, ", ")))
	}
	return NewNotFoundError(
		fmt.Sprintf("version %s not found", version),
		remediation...,
	)
}

// InvalidVersionFormat creates an error for a malformed version argument.
func InvalidVersionFormat(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid version format: %s", provided),
		"relkit generate [vMAJOR.MINOR.PATCH]",
		"Versions must match MAJOR.MINOR.PATCH with an optional v prefix",
		"Example: relkit generate v1.2.0",
	)
}

// MissingAPIKey creates an error when the text-generation API key is absent.
func MissingAPIKey(envVar string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("API key environment variable %s is not set", envVar),
		fmt.Sprintf("Export it before running: export %s=<key>", envVar),
		"Or configure a different variable via api_key_env in .relkit/config.yml",
	)
}

// GenerationFailed creates an error when the text-generation backend fails.
func GenerationFailed(err error) *CLIError {
	return WrapWithMessage(err, Collaborator,
		"changelog generation failed",
		"Check your network connection",
		"Verify the configured model and base_url are reachable",
		"Increase the timeout with RELKIT_TIMEOUT if requests are slow",
	)
}

// GitOperationFailed creates an error when a git read fails.
func GitOperationFailed(err error) *CLIError {
	return WrapWithMessage(err, Collaborator,
		"git operation failed",
		"Verify the repository is not corrupted: git fsck",
		"Check that the referenced tags and commits exist",
	)
}

// ConfigParseError creates an error for invalid config file format.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML syntax errors",
		"Reset to defaults by removing "+path,
	)
}

// FileNotWritable creates an error when a file cannot be written.
func FileNotWritable(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("cannot write to file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure parent directory exists and is writable",
	)
}
