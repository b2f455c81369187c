// ABOUTME: Presets command for the vdb CLI
// ABOUTME: Lists the named scenarios every new table is seeded with

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/chrisspier/vdb-benchmark-app/cli/internal/client"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List preset scenarios",
	Long:  `List the preset scenarios the backend seeds new scenario tables with.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		return runPresets(ctx, client.New(GetAPIURL()), os.Stdout, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(ctx context.Context, c *client.Client, w io.Writer, jsonOut bool) error {
	presets, err := c.Presets(ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(w, presets)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Name", "Models", "Volume GB", "Changes", "Envs", "Rollbacks", "Ratio", "Tooling").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, p := range presets {
		tooling := "-"
		if p.Input.ToolingInvestment != nil {
			tooling = money(*p.Input.ToolingInvestment)
		}
		t.Row(p.Name, number(p.Input.DataModels), number(p.Input.DataVolume), number(p.Input.CodeChanges),
			number(p.Input.EnvCount), number(p.Input.Rollbacks), number(p.Input.ComputeToStorageRatio), tooling)
	}
	fmt.Fprintln(w, t.String())
	return nil
}
