package cmd

import (
	"github.com/ppc-cli/ppc/internal/pwpush"
	"github.com/ppc-cli/ppc/internal/utils"
	"github.com/ppc-cli/ppc/internal/workflows"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	pushPassphrase       string
	pushNote             string
	pushExpireAfterDays  uint
	pushExpireAfterViews uint
	pushDeletable        bool
	pushNotDeletable     bool
	pushRetrievalStep    bool
	pushNoRetrievalStep  bool
	pushNoHistory        bool
)

func init() {
	flags := pushTextCmd.Flags()
	flags.StringVar(&pushPassphrase, "passphrase", "", "require this passphrase before the secret is shown")
	flags.StringVar(&pushNote, "note", "", "reference note, visible only to you")
	flags.UintVar(&pushExpireAfterDays, "expire-after-days", 0, "expire the push after this many days")
	flags.UintVar(&pushExpireAfterViews, "expire-after-views", 0, "expire the push after this many views")
	flags.BoolVar(&pushDeletable, "deletable-by-viewer", false, "allow viewers to delete the secret")
	flags.BoolVar(&pushNotDeletable, "no-deletable-by-viewer", false, "forbid viewers to delete the secret")
	flags.BoolVar(&pushRetrievalStep, "retrieval-step", false, "show a click-through page before revealing the secret")
	flags.BoolVar(&pushNoRetrievalStep, "no-retrieval-step", false, "reveal the secret without a click-through page")
	flags.BoolVar(&pushNoHistory, "no-history", false, "do not record this push in the local history")

	pushTextCmd.MarkFlagsMutuallyExclusive("deletable-by-viewer", "no-deletable-by-viewer")
	pushTextCmd.MarkFlagsMutuallyExclusive("retrieval-step", "no-retrieval-step")
}

func resetPushTextCommandState() {
	pushPassphrase = ""
	pushNote = ""
	pushExpireAfterDays = 0
	pushExpireAfterViews = 0
	pushDeletable = false
	pushNotDeletable = false
	pushRetrievalStep = false
	pushNoRetrievalStep = false
	pushNoHistory = false
}

var pushTextCmd = &cobra.Command{
	Use:   "text [payload]",
	Short: "Publish a text secret",
	Long: `Publishes a text secret.

The payload is taken from the argument. Without an argument it is read from
standard input, or prompted for without echo when standard input is a
terminal.

Options you do not give are left to the server's defaults; for example the
expiry limits configured on the instance apply unless --expire-after-days or
--expire-after-views is set.

Examples:
  ppc push text 'hunter2' --expire-after-days 2 --expire-after-views 5
  ppc push text --passphrase 'open sesame' --note 'staging db' < secret.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting push text command")

		inst, err := resolveInstance(cmd)
		if err != nil {
			return err
		}

		push, err := resolveTextPush(cmd, args)
		if err != nil {
			return err
		}

		historyPath := ""
		if !pushNoHistory {
			historyPath = historyFile()
		}

		stopSpinner := startSpinner(cmd, "Pushing secret to "+inst.Host+"...")
		outcome := workflows.Push(cmd.Context(), workflows.PushOptions{
			Instance:    inst,
			Kind:        pwpush.KindText,
			Text:        push,
			HistoryPath: historyPath,
			Logger:      Logger,
		})
		stopSpinner()

		return renderOutcome(cmd, outcome)
	},
}

// resolveTextPush turns parsed flags and arguments into a push intent.
// Optional fields are set only for flags the user gave.
func resolveTextPush(cmd *cobra.Command, args []string) (pwpush.TextPush, error) {
	flags := cmd.Flags()
	var push pwpush.TextPush

	if len(args) == 1 {
		push.Payload = args[0]
	} else {
		Logger.Debugf("no payload argument, reading from stdin")
		payload, err := utils.ReadPayload(cmd.InOrStdin(), "Secret: ", cmd.ErrOrStderr())
		if err != nil {
			return pwpush.TextPush{}, err
		}
		push.Payload = payload
	}

	if flags.Changed("passphrase") {
		push.Passphrase = pwpush.String(pushPassphrase)
	}
	if flags.Changed("note") {
		push.Note = pwpush.String(pushNote)
	}
	if flags.Changed("expire-after-days") {
		push.ExpireAfterDays = pwpush.Uint(pushExpireAfterDays)
	}
	if flags.Changed("expire-after-views") {
		push.ExpireAfterViews = pwpush.Uint(pushExpireAfterViews)
	}
	push.DeletableByViewer = resolveTriState(flags, "deletable-by-viewer", pushDeletable, "no-deletable-by-viewer", pushNotDeletable)
	push.RetrievalStep = resolveTriState(flags, "retrieval-step", pushRetrievalStep, "no-retrieval-step", pushNoRetrievalStep)

	Logger.Debugf("push fields: %v", pwpush.TextFields(push))
	return push, nil
}

// resolveTriState collapses a --flag/--no-flag pair. The pair is mutually
// exclusive, so at most one of them is Changed.
func resolveTriState(flags *pflag.FlagSet, yesName string, yes bool, noName string, no bool) pwpush.TriState {
	switch {
	case flags.Changed(yesName):
		return pwpush.Bool(yes)
	case flags.Changed(noName):
		return pwpush.Bool(!no)
	default:
		return pwpush.Unset
	}
}
