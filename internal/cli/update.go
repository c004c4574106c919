package cli

import (
	"fmt"

	"github.com/ariel-frischer/relkit/internal/output"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Add missing release entries to the changelog",
	Long: `Compare the changelog against the repository's version tags and
generate entries for every release newer than the highest documented one.
New entries are spliced directly below the "# Changes" header; existing
content is never rewritten.

The changelog must already exist and contain at least one documented
version. Use 'relkit full --output' to bootstrap a changelog from scratch.`,
	Example: `  relkit update
  relkit update --changelog docs/CHANGES.md`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	gen, _, err := newGenerator(true)
	if err != nil {
		return err
	}

	stop := startSpinner("Updating changelog...")
	defer stop()

	added, err := gen.AddToFile(gen.Path)
	if err != nil {
		return err
	}
	stop()

	out := cmd.OutOrStdout()
	switch added {
	case 0:
		output.PrintSuccess(out, fmt.Sprintf("%s is up to date", gen.Path))
	case 1:
		output.PrintSuccess(out, fmt.Sprintf("Added 1 entry to %s", gen.Path))
	default:
		output.PrintSuccess(out, fmt.Sprintf("Added %d entries to %s", added, gen.Path))
	}
	return nil
}
