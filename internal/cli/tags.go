package cli

import (
	"fmt"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/ariel-frischer/relkit/internal/output"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the semantic version tags of the repository",
	Long: `List the repository's semantic version tags in ascending order,
with the commit date and hash each tag points at. Tags that are not full
MAJOR.MINOR.PATCH versions are ignored, matching what the changelog
commands operate on.`,
	Example: `  relkit tags`,
	Args:    cobra.NoArgs,
	RunE:    runTags,
}

func init() {
	tagsCmd.GroupID = GroupUtility
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	gen, _, err := newGenerator(false)
	if err != nil {
		return err
	}

	catalog, err := gen.Catalog()
	if err != nil {
		return err
	}
	if catalog.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No semantic version tags found.")
		return nil
	}

	out := cmd.OutOrStdout()
	output.PrintHeading(out, fmt.Sprintf("Versions (%d):", catalog.Len()))
	for _, spec := range catalog.Versions() {
		output.PrintVersionRow(out, spec.Tag(), describeTag(gen.Commits, spec.Tag()))
	}
	return nil
}

// describeTag renders "date hash" for the row detail; lookup failures leave
// the detail blank rather than failing the listing.
func describeTag(commits changelog.CommitSource, tag string) string {
	date, err := commits.CommitDate(tag)
	if err != nil {
		return ""
	}
	hash, err := commits.CommitHash(tag)
	if err != nil {
		return date
	}
	if len(hash) > 8 {
		hash = hash[:8]
	}
	return date + "  " + hash
}
