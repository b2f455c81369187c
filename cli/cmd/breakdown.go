// ABOUTME: Breakdown command for the vdb CLI
// ABOUTME: Draws compute and storage cost bars for one row, with and without VDB

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chrisspier/vdb-benchmark-app/cli/internal/client"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/widgets"
)

const breakdownBarWidth = 40

var breakdownCmd = &cobra.Command{
	Use:   "breakdown <index>",
	Short: "Show the cost breakdown of one table row",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil || index < 0 {
			return fmt.Errorf("index must be a non-negative integer, got %q", args[0])
		}

		ctx, cancel := signalContext()
		defer cancel()

		c := newClient()
		defer rememberSession(c)
		return runBreakdown(ctx, c, index, os.Stdout, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(ctx context.Context, c *client.Client, index int, w io.Writer, jsonOut bool) error {
	breakdown, err := c.Breakdown(ctx, index)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(w, breakdown)
	}
	fmt.Fprintf(w, "Row %d: %s\n\n", breakdown.Index, breakdown.Configuration)
	fmt.Fprint(w, widgets.CostBars(breakdown.Bars, breakdownBarWidth))
	fmt.Fprintf(w, "\n%s\n", widgets.CostLegend())
	return nil
}
