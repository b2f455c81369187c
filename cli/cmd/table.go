// ABOUTME: Scenario table commands for the vdb CLI
// ABOUTME: Lists, appends to, removes from, and resets the session's scenario table

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chrisspier/vdb-benchmark-app/cli/internal/client"
)

var addFlags scenarioFlags

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the scenario table",
	Long: `Show every scenario in the current session's table. A new session starts
with one row per preset. The most recently added row is marked with *.

The session is remembered per backend, so later runs edit the same table.
Use --session or VDB_SESSION to pick a specific one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		c := newClient()
		defer rememberSession(c)
		return runTableList(ctx, c, os.Stdout, IsJSONOutput())
	},
}

var tableAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a scenario to the table",
	Long: `Compute a scenario and append it to the table. Invalid inputs leave the
table unchanged.

Example:
  vdb table add --preset Small --code-changes 80 --tooling 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		c := newClient()
		defer rememberSession(c)
		return runTableAdd(ctx, c, &addFlags, cmd, os.Stdout, IsJSONOutput())
	},
}

var tableRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the scenario at a zero-based index",
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
		return runTableRemove(ctx, c, index, os.Stdout, IsJSONOutput())
	},
}

var tableResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the table to the presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		c := newClient()
		defer rememberSession(c)
		return runTableReset(ctx, c, os.Stdout, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.AddCommand(tableAddCmd, tableRemoveCmd, tableResetCmd)
	addFlags.bind(tableAddCmd)
}

func runTableList(ctx context.Context, c *client.Client, w io.Writer, jsonOut bool) error {
	table, err := c.Table(ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(w, table)
	}
	if table.Len() == 0 {
		fmt.Fprintln(w, "Table is empty. Add a scenario with 'vdb table add' or run 'vdb table reset'.")
		return nil
	}
	fmt.Fprintln(w, renderScenarioTable(*table))
	return nil
}

func runTableAdd(ctx context.Context, c *client.Client, flags *scenarioFlags, cmd *cobra.Command, w io.Writer, jsonOut bool) error {
	input, err := flags.resolve(ctx, c, cmd)
	if err != nil {
		return err
	}

	result, err := c.Append(ctx, input)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(w, result)
	}
	fmt.Fprintf(w, "Added %s\n\n", describeRow(result.Table.Len()-1, result.Row))
	fmt.Fprintln(w, renderScenarioTable(result.Table))
	return nil
}

func runTableRemove(ctx context.Context, c *client.Client, index int, w io.Writer, jsonOut bool) error {
	result, err := c.Remove(ctx, index)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(w, result)
	}
	if result.Warning != "" {
		fmt.Fprintf(w, "Warning: %s\n", result.Warning)
		return nil
	}
	fmt.Fprintf(w, "Removed %s\n", describeRow(index, *result.Removed))
	if result.Table.Len() > 0 {
		fmt.Fprintf(w, "\n%s\n", renderScenarioTable(result.Table))
	}
	return nil
}

func runTableReset(ctx context.Context, c *client.Client, w io.Writer, jsonOut bool) error {
	table, err := c.Reset(ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(w, table)
	}
	fmt.Fprintf(w, "Table reset to %d presets\n\n", table.Len())
	fmt.Fprintln(w, renderScenarioTable(*table))
	return nil
}
