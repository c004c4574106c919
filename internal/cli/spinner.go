package cli

import (
	"time"

	"github.com/ariel-frischer/relkit/internal/progress"
	"github.com/briandowns/spinner"
)

// startSpinner shows a progress spinner while generation calls are in
// flight. Returns a stop function; a no-op when stdout is not a terminal so
// piped output stays clean.
func startSpinner(message string) func() {
	caps := progress.DetectTerminalCapabilities()
	if !caps.IsTTY {
		return func() {}
	}

	symbols := progress.SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
