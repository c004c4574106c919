// Package output provides terminal output formatting utilities for the relkit CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintSuccess prints a green checkmark followed by the message.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintMissing prints a red cross followed by the message.
func PrintMissing(out io.Writer, message string) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", red("✗"), message)
}

// PrintHeading prints a bold section heading.
func PrintHeading(out io.Writer, heading string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s\n", bold(heading))
}

// PrintVersionRow prints one catalog row: a cyan tag followed by detail text.
func PrintVersionRow(out io.Writer, tag, detail string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	if detail == "" {
		fmt.Fprintf(out, "  %s\n", cyan(tag))
		return
	}
	fmt.Fprintf(out, "  %s  %s\n", cyan(tag), detail)
}
