package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	relerr "github.com/ariel-frischer/relkit/internal/errors"
	"github.com/ariel-frischer/relkit/internal/output"
	"github.com/spf13/cobra"
)

var fullOutputFlag string

var fullCmd = &cobra.Command{
	Use:   "full",
	Short: "Generate the complete changelog from the whole tag history",
	Long: `Generate a complete changelog document covering every tagged
release, newest first, ending with a synthetic "* Start" entry for the
oldest tag.

The document goes to stdout by default. With --output it is written
atomically to the given file, replacing any existing content.`,
	Example: `  relkit full
  relkit full --output CHANGELOG.md`,
	Args: cobra.NoArgs,
	RunE: runFull,
}

func init() {
	fullCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(fullCmd)

	fullCmd.Flags().StringVarP(&fullOutputFlag, "output", "o", "", "Write the document to a file instead of stdout")
}

func runFull(cmd *cobra.Command, args []string) error {
	gen, _, err := newGenerator(true)
	if err != nil {
		return err
	}

	stop := startSpinner("Generating full changelog...")
	defer stop()

	if fullOutputFlag == "" {
		return gen.GenerateFull(cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := gen.GenerateFull(&buf); err != nil {
		return err
	}
	stop()

	if err := writeFileAtomic(fullOutputFlag, buf.Bytes()); err != nil {
		return relerr.FileNotWritable(fullOutputFlag)
	}
	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", fullOutputFlag))
	return nil
}

// writeFileAtomic writes data through a temp file in the target directory
// so a failed generation never truncates an existing document.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
