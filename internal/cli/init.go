package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/relkit/internal/config"
	"github.com/ariel-frischer/relkit/internal/output"
	"github.com/spf13/cobra"
)

var initForceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the project configuration file",
	Long: `Create .relkit/config.yml in the current directory with commented
default values. An existing config is left unchanged unless --force is
given.

Configuration precedence (highest to lowest):
  1. Environment variables (RELKIT_*)
  2. Project config (.relkit/config.yml)
  3. User config (~/.config/relkit/config.yml)
  4. Built-in defaults`,
	Example: `  relkit init
  relkit init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.GroupID = GroupUtility
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "Overwrite existing config with defaults")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil && !initForceFlag {
		output.PrintSuccess(out, fmt.Sprintf("Config already exists at %s (use --force to overwrite)", path))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	output.PrintSuccess(out, fmt.Sprintf("Created %s", path))
	return nil
}
