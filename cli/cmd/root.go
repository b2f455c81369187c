// ABOUTME: Root command for the vdb CLI
// ABOUTME: Handles global flags, backend URL, and scenario table session resolution

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/chrisspier/vdb-benchmark-app/cli/internal/client"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/recentsessions"
)

var (
	apiURL      string
	jsonOutput  bool
	sessionFlag string
	noSave      bool
)

const defaultAPIURL = "http://localhost:8080"

// sessionStore remembers sessions between runs; tests point it at a temp dir
var sessionStore = recentsessions.New(recentsessions.DefaultConfigDir())

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "vdb",
	Short: "CLI for the VDB benchmark calculator",
	Long: `vdb compares data warehouse costs with and without Virtual Data Builds.

It computes one-off scenarios and edits a scenario table kept by the backend.
Run without a subcommand in a terminal to open the interactive TUI.

Environment Variables:
  VDB_API_URL  Backend API URL (default: http://localhost:8080)
  VDB_SESSION  Scenario table session to resume
  VDB_DEBUG    Write TUI debug log to the config directory when set to 1`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return cmd.Help()
		}
		return runTUI()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides VDB_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&sessionFlag, "session", "", "Scenario table session ID (overrides VDB_SESSION)")
	rootCmd.PersistentFlags().BoolVar(&noSave, "no-save", false, "Do not remember the session for later runs")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("VDB_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// GetSessionID returns the session from flag, env, or the last one used against this backend
func GetSessionID() string {
	if sessionFlag != "" {
		return sessionFlag
	}
	if envSession := os.Getenv("VDB_SESSION"); envSession != "" {
		return envSession
	}
	return sessionStore.Lookup(GetAPIURL())
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newClient returns a client resuming the current session
func newClient() *client.Client {
	c := client.New(GetAPIURL())
	c.SetSessionID(GetSessionID())
	return c
}

// rememberSession stores the session the backend ended up using
func rememberSession(c *client.Client) {
	if noSave {
		return
	}
	sessionStore.Remember(c.BaseURL(), c.SessionID())
}

// signalContext is canceled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
