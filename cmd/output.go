package cmd

import (
	"encoding/json"
	"fmt"

	kerrors "github.com/ppc-cli/ppc/internal/errors"
	"github.com/ppc-cli/ppc/internal/pwpush"
	"github.com/ppc-cli/ppc/internal/ui"

	"github.com/spf13/cobra"
)

// outcomeJSON is the --json rendering of an Outcome.
type outcomeJSON struct {
	Status      int    `json:"status,omitempty"`
	Body        string `json:"body,omitempty"`
	Error       string `json:"error,omitempty"`
	Unsupported bool   `json:"unsupported,omitempty"`
}

// renderOutcome prints an outcome and decides whether the command failed.
// The response body goes to stdout untouched; status lines go to stderr.
// A missing response or a status of 400 and above fails the command.
func renderOutcome(cmd *cobra.Command, outcome pwpush.Outcome) error {
	failed := !outcome.OK() || outcome.Status >= 400

	if jsonOutput {
		out := outcomeJSON{
			Status:      outcome.Status,
			Body:        outcome.Body,
			Error:       outcome.Message(),
			Unsupported: outcome.IsUnsupported(),
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
	} else {
		printOutcome(cmd, outcome)
	}

	if failed {
		return kerrors.ErrReported
	}
	return nil
}

func printOutcome(cmd *cobra.Command, outcome pwpush.Outcome) {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	switch {
	case outcome.IsUnsupported():
		fmt.Fprintln(stderr, ui.Error.Sprint("✗")+" "+outcome.Message())
		fmt.Fprintln(stderr, ui.Info.Sprint("→")+" Only "+ui.Code.Sprint("ppc push text")+" is available at the moment")
		return
	case !outcome.OK():
		fmt.Fprintln(stderr, ui.Error.Sprint("✗")+" Request failed: "+outcome.Message())
		return
	case outcome.Status >= 400:
		fmt.Fprintln(stderr, ui.Error.Sprint("✗")+" Server responded with "+ui.HTTPStatus(outcome.Status))
	default:
		fmt.Fprintln(stderr, ui.Success.Sprint("✓")+" Server responded with "+ui.HTTPStatus(outcome.Status))
	}

	if outcome.Body != "" {
		fmt.Fprint(stdout, ui.EnsureNewline(outcome.Body))
	}
}
