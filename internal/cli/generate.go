package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
)

var generateFromFlag string

var generateCmd = &cobra.Command{
	Use:   "generate [version]",
	Short: "Generate a changelog entry for a release",
	Long: `Generate the changelog entry for one release, or for a span of
releases.

Without arguments, the entry covers the latest tag up to HEAD (the
unreleased changes). With a version argument, the entry covers the span
from that version's predecessor tag up to the version itself. --from
overrides the starting point.

When both a version and --from are given and both are concrete versions,
one entry is generated per consecutive tagged release inside the span.

The entry is written to stdout; the changelog file is not modified. Use
'relkit update' to splice missing entries into the changelog.`,
	Example: `  relkit generate                      # latest tag up to HEAD
  relkit generate v1.2.0               # v1.1.0..v1.2.0 (predecessor resolved)
  relkit generate v1.2.0 --from v1.0.0 # every release in v1.0.0..v1.2.0
  relkit generate --from v1.1.0        # v1.1.0..HEAD`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateFromFlag, "from", "", "Starting version of the span")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, _, err := newGenerator(true)
	if err != nil {
		return err
	}

	to := ""
	if len(args) == 1 {
		to = args[0]
	}

	stop := startSpinner("Generating changelog entries...")
	defer stop()

	// A fully concrete span covers every release between the endpoints;
	// everything else is a single entry.
	if to != "" && generateFromFlag != "" {
		var buf bytes.Buffer
		if err := gen.GenerateRange(&buf, generateFromFlag, to); err != nil {
			return err
		}
		stop()
		fmt.Fprint(cmd.OutOrStdout(), buf.String())
		return nil
	}

	entry, err := gen.GenerateFor(to, generateFromFlag)
	if err != nil {
		return err
	}

	stop()
	fmt.Fprint(cmd.OutOrStdout(), entry.Render())
	return nil
}
