// ABOUTME: Summary and scatter commands for the vdb CLI
// ABOUTME: Reports headline savings and the code-changes by environments savings grid

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chrisspier/vdb-benchmark-app/cli/internal/client"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/widgets"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show headline savings for the table",
	Long: `Show the average savings across the table and, for the most recently
added scenario, its savings amount, tooling investment, and ROI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		c := newClient()
		defer rememberSession(c)
		return runSummary(ctx, c, os.Stdout, IsJSONOutput())
	},
}

var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Show savings by code changes and environments",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		c := newClient()
		defer rememberSession(c)
		return runScatter(ctx, c, os.Stdout, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd, scatterCmd)
}

func runSummary(ctx context.Context, c *client.Client, w io.Writer, jsonOut bool) error {
	summary, err := c.Summary(ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(w, summary)
	}

	fmt.Fprintf(w, "Scenarios:        %d\n", summary.RowCount)
	fmt.Fprintf(w, "Average savings:  %s\n", percent(summary.AverageSavingsPercent))
	if !summary.HasLast {
		fmt.Fprintln(w, "\nAdd a scenario to see its savings and ROI.")
		return nil
	}
	fmt.Fprintf(w, "\nLast added:\n")
	fmt.Fprintf(w, "  Savings:        %s\n", money(summary.SavingsAmount))
	if summary.ToolingInvestment != nil {
		fmt.Fprintf(w, "  Tooling:        %s\n", money(*summary.ToolingInvestment))
	}
	if summary.ReturnOnInvestment != nil {
		fmt.Fprintf(w, "  ROI:            %s\n", percent(*summary.ReturnOnInvestment))
	} else {
		fmt.Fprintf(w, "  ROI:            n/a (no tooling investment)\n")
	}
	return nil
}

func runScatter(ctx context.Context, c *client.Client, w io.Writer, jsonOut bool) error {
	points, err := c.Scatter(ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(w, points)
	}
	if len(points) == 0 {
		fmt.Fprintln(w, "Table is empty.")
		return nil
	}
	fmt.Fprintln(w, widgets.ScatterGrid(points))
	return nil
}
