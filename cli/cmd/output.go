// ABOUTME: Shared output helpers for CLI commands
// ABOUTME: Formats currency and percentages and renders scenario tables with lipgloss

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lastStyle   = cellStyle.Bold(true)
)

// writeJSON pretty-prints v
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// rowName labels appended rows that carry no preset name
func rowName(row models.ScenarioRow) string {
	if row.Name == "" {
		return "custom"
	}
	return row.Name
}

// renderScenarioTable renders every row; the last-added row is marked with *
func renderScenarioTable(state models.TableState) string {
	lastIdx := -1
	rows := make([][]string, 0, len(state.Rows))
	for i, row := range state.Rows {
		marker := ""
		if state.Last != nil && state.Last.ID == row.ID {
			marker = "*"
			lastIdx = i
		}
		rows = append(rows, []string{
			strconv.Itoa(i) + marker,
			rowName(row),
			number(row.DataModels),
			number(row.DataVolume),
			number(row.CodeChanges),
			number(row.EnvCount),
			number(row.Rollbacks),
			number(row.ComputeToStorageRatio),
			money(row.TotalCostBaseline),
			money(row.TotalCostOptimized),
			percent(row.SavingsPercent),
			money(row.SavingsAmount),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Name", "Models", "Volume GB", "Changes", "Envs", "Rollbacks", "Ratio",
			"Baseline", "Optimized", "Savings %", "Savings").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == lastIdx:
				return lastStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

// renderResult writes the cost profile of one scenario
func renderResult(w io.Writer, result models.ScenarioResult) {
	fmt.Fprintf(w, "Scenario: %s\n\n", result.Description())

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "Storage", "Compute", "Total").
		Row("VDB Disabled", money(result.StorageCostBaseline), money(result.ComputeCostBaseline), money(result.TotalCostBaseline)).
		Row("VDB Enabled", money(result.StorageCostOptimized), money(result.ComputeCostOptimized), money(result.TotalCostOptimized)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.String())

	fmt.Fprintf(w, "\nSavings:          %s (%s)\n", money(result.SavingsAmount), percent(result.SavingsPercent))
	if result.ToolingInvestment != nil {
		fmt.Fprintf(w, "Tooling:          %s\n", money(*result.ToolingInvestment))
	}
	if result.ReturnOnInvestment != nil {
		fmt.Fprintf(w, "ROI:              %s\n", percent(*result.ReturnOnInvestment))
	}
}

// describeRow is a one-line summary used after table edits
func describeRow(index int, row models.ScenarioRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s: %s", index, rowName(row), row.Description())
	fmt.Fprintf(&b, " -> saves %s (%s)", money(row.SavingsAmount), percent(row.SavingsPercent))
	return b.String()
}
