package cmd

import (
	"github.com/ppc-cli/ppc/internal/pwpush"
	"github.com/ppc-cli/ppc/internal/workflows"

	"github.com/spf13/cobra"
)

// PushCmd publishes a new secret.
var PushCmd = &cobra.Command{
	Use:   "push",
	Short: "Publish a new secret",
	Long: `Publishes a new secret and prints the server's response.

Secrets can be text, files or URLs. Only text pushes are available at the
moment; file and URL pushes are accepted on the command line but report
that they are not yet supported.`,
}

var pushFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Publish a file (not yet supported)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnsupportedPush(cmd, pwpush.KindFile)
	},
}

var pushURLCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Publish a URL redirect (not yet supported)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnsupportedPush(cmd, pwpush.KindURL)
	},
}

func init() {
	PushCmd.AddCommand(pushTextCmd)
	PushCmd.AddCommand(pushFileCmd)
	PushCmd.AddCommand(pushURLCmd)
}

func runUnsupportedPush(cmd *cobra.Command, kind pwpush.Kind) error {
	inst, err := resolveInstance(cmd)
	if err != nil {
		return err
	}
	outcome := workflows.Push(cmd.Context(), workflows.PushOptions{
		Instance: inst,
		Kind:     kind,
		Logger:   Logger,
	})
	return renderOutcome(cmd, outcome)
}
