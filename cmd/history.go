package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/ppc-cli/ppc/internal/history"
	"github.com/ppc-cli/ppc/internal/ui"

	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	HistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "show at most this many recent entries (0 for all)")
}

func resetHistoryCommandState() {
	historyLimit = 20
}

// historyFile returns the journal path, or "" when it cannot be determined.
func historyFile() string {
	path, err := history.DefaultPath()
	if err != nil {
		Logger.Warnf("push history disabled: %v", err)
		return ""
	}
	return path
}

// HistoryCmd shows the local push journal.
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show pushes recorded on this machine",
	Long: `Shows the local journal of push attempts: when, to which instance, which
options were set and what the server answered. Secret values are never
recorded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := historyFile()
		if path == "" {
			return fmt.Errorf("cannot locate the history file")
		}
		Logger.Debugf("reading history from %s", path)

		entries, err := history.ReadEntries(path)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read history: %v", err)
		}
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}

		if jsonOutput {
			if entries == nil {
				entries = []history.Entry{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info.Sprint("→")+" No pushes recorded yet")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tKIND\tINSTANCE\tRESULT\tFIELDS")
		for _, e := range entries {
			result := e.Error
			if result == "" {
				result = ui.HTTPStatus(e.Status)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", e.Timestamp, e.Kind, e.Instance, result, e.Fields)
		}
		return w.Flush()
	},
}
