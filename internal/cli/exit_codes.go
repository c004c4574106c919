package cli

import (
	"errors"

	"github.com/ariel-frischer/relkit/internal/changelog"
	relerr "github.com/ariel-frischer/relkit/internal/errors"
)

// Exit codes for the relkit CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic runtime failure
	ExitFailure = 1

	// ExitCheckFailed indicates the checked version is not documented
	ExitCheckFailed = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitNotFound indicates a requested version or tag does not exist
	ExitNotFound = 4

	// ExitCollaboratorFailed indicates git or the generation backend failed
	ExitCollaboratorFailed = 5
)

// ExitError carries a specific process exit code through the cobra RunE
// chain up to main.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError creates an ExitError with the given code and no message.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// WrapExitError attaches an exit code to an existing error.
func WrapExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// ExitCode extracts the process exit code from an error returned by
// Execute. A nil error is success; errors without an explicit code map to
// ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var argErr *changelog.ArgumentError
	if errors.As(err, &argErr) {
		return ExitInvalidArguments
	}
	var notFound *changelog.NotFoundError
	if errors.As(err, &notFound) {
		return ExitNotFound
	}
	var collab *changelog.CollaboratorError
	if errors.As(err, &collab) {
		return ExitCollaboratorFailed
	}
	if cliErr := relerr.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case relerr.Argument:
			return ExitInvalidArguments
		case relerr.NotFound:
			return ExitNotFound
		case relerr.Collaborator:
			return ExitCollaboratorFailed
		}
	}
	return ExitFailure
}
