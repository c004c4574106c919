// Package cli implements the relkit command tree.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ariel-frischer/relkit/internal/changelog"
	relerr "github.com/ariel-frischer/relkit/internal/errors"
	"github.com/ariel-frischer/relkit/internal/git"
	"github.com/spf13/cobra"
)

// Command group IDs for help output organization.
const (
	GroupChangelog = "changelog"
	GroupUtility   = "utility"
)

var (
	configFlag    string
	repoFlag      string
	changelogFlag string
	debugFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "relkit",
	Short: "Generate and maintain changelogs from git history",
	Long: `relkit turns the git history between release tags into changelog
entries. It reads the semantic version tags of a repository, collects the
commits and diff between consecutive releases, and asks a text-generation
model to summarize them.

The changelog document starts with a "# Changes" header; relkit splices new
entries directly below it and never rewrites existing ones.

Project page: https://github.com/ariel-frischer/relkit`,
	Example: `  # Entry for the latest tag up to HEAD
  relkit generate

  # Entry for a specific release
  relkit generate v1.2.0

  # Entries for a whole span of releases
  relkit generate v2.0.0 --from v1.0.0

  # Rebuild the complete changelog document
  relkit full --output CHANGELOG.md

  # Append entries for releases missing from the changelog
  relkit update

  # Verify a release is documented (CI gate)
  relkit check v1.2.0`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			git.SetDebugLogger(func(format string, args ...any) {
				fmt.Fprintf(cmd.ErrOrStderr(), "[debug] "+format+"\n", args...)
			})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default .relkit/config.yml)")
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", ".", "Path to the git repository")
	rootCmd.PersistentFlags().StringVar(&changelogFlag, "changelog", "", "Changelog path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug output")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupChangelog, Title: "Changelog Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)
}

// Execute runs the root command and renders any failure with its category
// and remediation steps.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := toCLIError(err); cliErr != nil {
		relerr.PrintError(cliErr)
	}
	return err
}

// toCLIError maps an arbitrary command error onto the structured CLIError
// used for terminal rendering. Bare ExitErrors carry no message and render
// nothing.
func toCLIError(err error) *relerr.CLIError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return nil
	}

	if cliErr := relerr.AsCLIError(err); cliErr != nil {
		return cliErr
	}

	var argErr *changelog.ArgumentError
	if errors.As(err, &argErr) {
		return relerr.NewArgumentError(argErr.Error(),
			"Make sure the changelog exists and has at least one '## YYYY-MM-DD vX.Y.Z' entry",
			"Bootstrap a new changelog with 'relkit full --output <path>'")
	}

	var notFound *changelog.NotFoundError
	if errors.As(err, &notFound) {
		if len(notFound.Available) == 0 {
			return relerr.NoVersionsFound()
		}
		return relerr.VersionNotFound(notFound.Version, notFound.Available)
	}

	var collab *changelog.CollaboratorError
	if errors.As(err, &collab) {
		if strings.Contains(collab.Op, "generat") || strings.Contains(collab.Op, "prompt") {
			return relerr.GenerationFailed(err)
		}
		return relerr.GitOperationFailed(err)
	}

	return relerr.Wrap(err, relerr.Runtime)
}
