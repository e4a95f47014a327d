package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ppc-cli/ppc/internal/configs"
	kerrors "github.com/ppc-cli/ppc/internal/errors"
	"github.com/ppc-cli/ppc/internal/ui"
	"github.com/ppc-cli/ppc/internal/utils"

	"github.com/spf13/cobra"
)

// ConfigCmd manages the settings file.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ppc settings",
	Long: `Shows and writes the settings file that names your default instance and
credentials.

Examples:
  # Save a self-hosted instance and credentials
  ppc config init --url pwpush.example.com --email me@example.com --token abc123

  # Show the instance ppc would talk to
  ppc config show`,
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing settings file")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func resetConfigCommandState() {
	configForce = false
}

// configShowJSON is the --json rendering of config show.
type configShowJSON struct {
	SettingsFile string `json:"settings_file"`
	URL          string `json:"url"`
	Email        string `json:"email,omitempty"`
	Token        string `json:"token,omitempty"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved instance and credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		inst, err := resolveInstance(cmd)
		if err != nil {
			return err
		}

		out := configShowJSON{SettingsFile: path, URL: inst.BaseURL()}
		if inst.Credentials != nil {
			out.Email = inst.Credentials.Email
			out.Token = utils.MaskToken(inst.Credentials.Token)
		}

		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Settings file: %s\n", out.SettingsFile)
		fmt.Fprintf(w, "Instance:      %s\n", ui.Link.Sprint(out.URL))
		if out.Email == "" {
			fmt.Fprintf(w, "Credentials:   %s\n", ui.Muted.Sprint("anonymous"))
			return nil
		}
		fmt.Fprintf(w, "Email:         %s\n", ui.Highlight.Sprint(out.Email))
		fmt.Fprintf(w, "Token:         %s\n", out.Token)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the global flags into the settings file",
	Long: `Writes --url, --protocol, --email and --token into the settings file so
later commands can omit them. Only flags you give are written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Error.Sprint("✗")+" Settings file already exists at "+path)
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Info.Sprint("→")+" Use "+ui.Flag.Sprint("--force")+" to overwrite it")
			return kerrors.ErrReported
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check settings file: %w", err)
		}

		// Validate the flags on their own so a half-set credential pair is
		// rejected before it is persisted.
		flags := flagOverrides(cmd)
		if _, err := configs.ResolveInstance(flags); err != nil {
			return err
		}
		if flags.Email != nil && !utils.IsValidEmail(*flags.Email) {
			Logger.Warnf("%s does not look like an email address", *flags.Email)
		}

		settings := &configs.Settings{}
		if flags.Host != nil {
			settings.Instance.URL = *flags.Host
		}
		if flags.Protocol != nil {
			settings.Instance.Protocol = *flags.Protocol
		}
		if flags.Email != nil && flags.Token != nil {
			settings.Auth.Email = *flags.Email
			settings.Auth.Token = *flags.Token
		}

		if err := configs.SaveSettings(path, settings); err != nil {
			return err
		}
		Logger.Infof("wrote settings to %s", path)
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Success.Sprint("✓")+" Settings saved to "+path)
		return nil
	},
}
