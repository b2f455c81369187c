// ABOUTME: Non-interactive scenario computation command
// ABOUTME: Prices one scenario with and without VDB without touching the table

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chrisspier/vdb-benchmark-app/cli/internal/client"
)

var computeFlags scenarioFlags

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the cost of one scenario",
	Long: `Compute storage, compute, and total cost of a scenario with and without
Virtual Data Builds. The scenario table is not modified.

Examples:
  vdb compute --preset Small
  vdb compute --data-models 200 --data-volume 100 --code-changes 40 --env-count 2 --rollbacks 1 --ratio 7
  vdb compute --preset Medium --env-count 5 --tooling 100 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		return runCompute(ctx, client.New(GetAPIURL()), &computeFlags, cmd, os.Stdout, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeFlags.bind(computeCmd)
}

func runCompute(ctx context.Context, c *client.Client, flags *scenarioFlags, cmd *cobra.Command, w io.Writer, jsonOut bool) error {
	input, err := flags.resolve(ctx, c, cmd)
	if err != nil {
		return err
	}

	result, err := c.Compute(ctx, input)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(w, result)
	}
	renderResult(w, *result)
	return nil
}
