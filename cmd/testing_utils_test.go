package cmd

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ppc-cli/ppc/internal/configs"
	logger "github.com/ppc-cli/ppc/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetGlobalState restores every package-level flag variable and the
// cobra flag state so tests do not leak into each other.
func resetGlobalState() {
	instanceURL = configs.DefaultHost
	protocol = configs.ProtocolHTTPS
	email = ""
	token = ""
	jsonOutput = false
	logLevel = logger.LevelWarn
	configPath = ""
	Logger = logger.Logger{}

	resetPushTextCommandState()
	resetListCommandState()
	resetConfigCommandState()
	resetHistoryCommandState()
	resetCobraFlagState(RootCmd)
}

func resetCobraFlagState(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetCobraFlagState(child)
	}
}

// setupTestEnvironment isolates settings and environment for one test.
func setupTestEnvironment(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{"PPC_URL", "PPC_PROTOCOL", "PPC_EMAIL", "PPC_TOKEN"} {
		t.Setenv(key, "")
	}
	resetGlobalState()
	t.Cleanup(resetGlobalState)
}

// executeCommand runs the root command with args and returns what it wrote.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	RootCmd.SetArgs(args)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		RootCmd.SetArgs(nil)
		RootCmd.SetIn(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
	})

	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// serverArgs returns the global flags that point ppc at server.
func serverArgs(server *httptest.Server) []string {
	return []string{"--protocol", "http", "--url", strings.TrimPrefix(server.URL, "http://")}
}
