package cli

import (
	"fmt"

	relerr "github.com/ariel-frischer/relkit/internal/errors"
	"github.com/ariel-frischer/relkit/internal/output"
	"github.com/ariel-frischer/relkit/internal/semver"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <version>",
	Short: "Verify a release is documented in the changelog",
	Long: `Check whether the changelog mentions the given version. Intended
as a CI release gate: the command exits 0 when the version appears in the
changelog and ` + fmt.Sprint(ExitCheckFailed) + ` when it does not.`,
	Example: `  relkit check v1.2.0
  relkit check 1.2.0    # v prefix optional`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.GroupID = GroupUtility
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	spec, err := semver.New(args[0])
	if err != nil || !spec.IsParsed() {
		return relerr.InvalidVersionFormat(args[0])
	}

	gen, _, err := newGenerator(false)
	if err != nil {
		return err
	}

	documented, err := gen.IsVersionDocumented(spec)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !documented {
		output.PrintMissing(out, fmt.Sprintf("%s is not documented in %s", spec.Tag(), gen.Path))
		return NewExitError(ExitCheckFailed)
	}
	output.PrintSuccess(out, fmt.Sprintf("%s is documented in %s", spec.Tag(), gen.Path))
	return nil
}
