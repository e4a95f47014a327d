package cmd

import (
	"fmt"

	"github.com/ppc-cli/ppc/internal/pwpush"
	"github.com/ppc-cli/ppc/internal/workflows"

	"github.com/spf13/cobra"
)

// tokenWorkflow is a workflow operating on one existing push.
type tokenWorkflow func(cmd *cobra.Command, opts workflows.TokenOptions) pwpush.Outcome

var (
	// ExpireCmd expires an existing push.
	ExpireCmd = newTokenCommand("expire", "Expire an existing secret", func(cmd *cobra.Command, opts workflows.TokenOptions) pwpush.Outcome {
		return workflows.Expire(cmd.Context(), opts)
	})

	// PreviewCmd shows the secret URL of a push without viewing it.
	PreviewCmd = newTokenCommand("preview", "Show the secret URL of a push without viewing it", func(cmd *cobra.Command, opts workflows.TokenOptions) pwpush.Outcome {
		return workflows.Preview(cmd.Context(), opts)
	})

	// AuditCmd shows the view log of a push.
	AuditCmd = newTokenCommand("audit", "Show the view log of a push", func(cmd *cobra.Command, opts workflows.TokenOptions) pwpush.Outcome {
		return workflows.Audit(cmd.Context(), opts)
	})
)

// newTokenCommand builds a command with one <url-token> subcommand per kind.
func newTokenCommand(use, short string, run tokenWorkflow) *cobra.Command {
	parent := &cobra.Command{
		Use:   use,
		Short: short,
	}

	for _, kind := range pwpush.Kinds {
		parent.AddCommand(&cobra.Command{
			Use:   string(kind) + " <url-token>",
			Short: fmt.Sprintf("%s a %s push (not yet supported)", use, kind),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				inst, err := resolveInstance(cmd)
				if err != nil {
					return err
				}
				outcome := run(cmd, workflows.TokenOptions{
					Instance: inst,
					Kind:     kind,
					URLToken: args[0],
					Logger:   Logger,
				})
				return renderOutcome(cmd, outcome)
			},
		})
	}

	return parent
}

// ListCmd lists the pushes of the authenticated account.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your active or expired pushes",
}

var listKind string

func init() {
	ListCmd.PersistentFlags().StringVar(&listKind, "kind", string(pwpush.KindText), "object kind: text, file or url")

	for _, state := range []workflows.ListState{workflows.ListActive, workflows.ListExpired} {
		ListCmd.AddCommand(&cobra.Command{
			Use:   string(state),
			Short: fmt.Sprintf("List %s pushes (not yet supported)", state),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				kind, err := parseKind(listKind)
				if err != nil {
					return err
				}
				inst, err := resolveInstance(cmd)
				if err != nil {
					return err
				}
				outcome := workflows.List(cmd.Context(), workflows.ListOptions{
					Instance: inst,
					Kind:     kind,
					State:    state,
					Logger:   Logger,
				})
				return renderOutcome(cmd, outcome)
			},
		})
	}
}

func resetListCommandState() {
	listKind = string(pwpush.KindText)
}

func parseKind(s string) (pwpush.Kind, error) {
	for _, k := range pwpush.Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %q: must be text, file or url", s)
}
