package cmd

import (
	"fmt"
	"os"

	"github.com/ppc-cli/ppc/internal/configs"
	logger "github.com/ppc-cli/ppc/internal/logging"
	"github.com/ppc-cli/ppc/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	instanceURL string
	protocol    = configs.ProtocolHTTPS
	email       string
	token       string
	jsonOutput  bool
	logLevel    = logger.LevelWarn
	configPath  string

	// Logger writes diagnostics to stderr at the --log verbosity.
	Logger logger.Logger

	RootCmd = &cobra.Command{
		Use:   "ppc",
		Short: "Interact with Password Pusher from the command line",
		Long: `ppc publishes and manages secrets on a Password Pusher instance.

A push is a secret (text, file or URL) behind an expiring link. By default
ppc talks to the public instance at https://pwpush.com; use --url and
--protocol, the PPC_* environment variables or ppc config init to point it
at your own.

Authenticated requests need both --email and --token (see the token page of
your account).

Examples:
  # Push a secret that expires after one view
  ppc push text 'hunter2' --expire-after-views 1

  # Read the secret from a pipe and require a click-through
  vault read -field=password db | ppc push text --retrieval-step

  # Use a self-hosted instance with machine-readable output
  ppc --url pwpush.example.com --json push text 'hunter2'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.New(cmd.ErrOrStderr(), logLevel)
			Logger.Debugf("initialized logging at level %s", logLevel)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewFigure("ppc", "", true)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint(banner.String()))
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'ppc --help' to see available commands.")
		},
	}
)

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&instanceURL, "url", "u", configs.DefaultHost, "Password Pusher instance host")
	flags.VarP(&protocol, "protocol", "p", "instance protocol (http or https)")
	flags.StringVarP(&email, "email", "e", "", "account email for authenticated requests (X-User-Email)")
	flags.StringVarP(&token, "token", "t", "", "API token for authenticated requests (X-User-Token)")
	flags.BoolVarP(&jsonOutput, "json", "j", false, "print results as JSON")
	flags.VarP(&logLevel, "log", "l", "log verbosity: error, warn, info, debug or trace (logs go to stderr)")
	flags.StringVar(&configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/ppc/config.toml)")

	RootCmd.AddCommand(PushCmd)
	RootCmd.AddCommand(ExpireCmd)
	RootCmd.AddCommand(PreviewCmd)
	RootCmd.AddCommand(AuditCmd)
	RootCmd.AddCommand(ListCmd)
	RootCmd.AddCommand(HistoryCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// settingsPath returns the --config value or the default location.
func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return configs.DefaultSettingsPath()
}

// flagOverrides returns the global flags the user actually set.
func flagOverrides(cmd *cobra.Command) configs.Overrides {
	flags := cmd.Flags()
	var o configs.Overrides
	if flags.Changed("url") {
		o.Host = &instanceURL
	}
	if flags.Changed("protocol") {
		p := protocol.String()
		o.Protocol = &p
	}
	if flags.Changed("email") {
		o.Email = &email
	}
	if flags.Changed("token") {
		o.Token = &token
	}
	return o
}

// resolveInstance layers the settings file, environment and flags.
func resolveInstance(cmd *cobra.Command) (configs.Instance, error) {
	path, err := settingsPath()
	if err != nil {
		return configs.Instance{}, err
	}
	Logger.Debugf("loading settings from %s", path)

	settings, err := configs.LoadSettings(path)
	if err != nil {
		return configs.Instance{}, err
	}

	inst, err := configs.ResolveInstance(settings.Overrides(), configs.EnvOverrides(os.LookupEnv), flagOverrides(cmd))
	if err != nil {
		return configs.Instance{}, err
	}
	Logger.Debugf("resolved instance %s (authenticated=%t)", inst.BaseURL(), inst.Authenticated())
	return inst, nil
}
