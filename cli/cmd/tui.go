// ABOUTME: TUI command for the vdb CLI
// ABOUTME: Opens the interactive scenario table on the current session

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chrisspier/vdb-benchmark-app/cli/internal/recentsessions"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/debuglog"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive scenario table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() error {
	if os.Getenv("VDB_DEBUG") == "1" {
		if err := debuglog.Init(recentsessions.DefaultConfigDir()); err == nil {
			defer debuglog.Close()
		}
	}

	c := newClient()
	defer rememberSession(c)
	return tui.Run(c)
}
