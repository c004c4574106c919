package changelog

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/relkit/internal/semver"
)

// TagSource lists the raw tag names visible in the repository.
// A failure is fatal for the current operation and is never retried.
type TagSource interface {
	ListTags() ([]string, error)
}

// CommitSource resolves commit metadata for a tag or symbolic ref.
type CommitSource interface {
	// CommitDate returns the commit date of the ref as YYYY-MM-DD.
	CommitDate(ref string) (string, error)
	// CommitHash returns the full commit hash of the ref.
	CommitHash(ref string) (string, error)
}

// DiffSource retrieves the raw patch/log text between two refs.
// An empty string means there are no commits in the range.
type DiffSource interface {
	PatchLog(fromRef, toRef string) (string, error)
}

// TextGenerator produces changelog prose from a prompt pair. Failures
// (network, timeout, model) propagate unchanged; the core does not retry.
type TextGenerator interface {
	Generate(systemPrompt, userPrompt string) (string, error)
}

// TemplateSource loads a named prompt template, falling back to defaultText
// when no override is configured.
type TemplateSource interface {
	Load(name, defaultText string) (string, error)
}

// Entry is a single generated changelog entry. It is immutable once
// produced: either returned to the caller as rendered text or spliced into
// a changelog document and discarded.
type Entry struct {
	// Date is the ISO calendar date of the entry's end commit.
	Date string
	// Version is the spec the entry documents; the HEAD marker for a
	// pending (unreleased) entry.
	Version semver.Spec
	// Body is the generated markdown text. It is empty only when the
	// underlying diff was empty, in which case the entry renders as a
	// header-only placeholder.
	Body string
}

// Render produces the entry text: a blank line, the "## date tag" header,
// and the body framed by blank lines. Header-only placeholders render the
// version without a tag prefix.
func (e Entry) Render() string {
	if e.Body == "" {
		return fmt.Sprintf("\n## %s %s\n", e.Date, e.Version.Untag())
	}
	return fmt.Sprintf("\n## %s %s\n\n%s\n", e.Date, e.Version.Tag(), e.Body)
}

// NotFoundError is returned when a referenced version does not exist in the
// catalog, or when no prior version can be determined for a range.
type NotFoundError struct {
	Version   string
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("version %q not found (no version tags in repository)", e.Version)
	}
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.Available, ", "))
}

// ArgumentError reports a caller-fixable precondition failure on the
// changelog document: the file does not exist, or it contains no documented
// version to continue from.
type ArgumentError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("changelog %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("changelog %s: %s", e.Path, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// CollaboratorError wraps a failed external call with the operation and the
// offending ref or range, so callers can log usefully.
type CollaboratorError struct {
	Op    string
	Range string
	Err   error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s for %s: %v", e.Op, e.Range, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
