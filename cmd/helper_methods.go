package cmd

import (
	"os"
	"time"

	logger "github.com/ppc-cli/ppc/internal/logging"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// startSpinner shows a spinner on stderr while a request is in flight and
// returns the function that stops it.
//
// The spinner only runs when stderr is the real terminal, output is not
// JSON and the log level is below info, so it never interleaves with log
// lines or machine-readable output.
func startSpinner(cmd *cobra.Command, message string) func() {
	if jsonOutput || Logger.Enabled(logger.LevelInfo) || !stderrIsTerminal(cmd) {
		Logger.Debugf("spinner disabled: %s", message)
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}
	s.Start()

	return s.Stop
}

func stderrIsTerminal(cmd *cobra.Command) bool {
	return cmd.ErrOrStderr() == os.Stderr && term.IsTerminal(int(os.Stderr.Fd()))
}
