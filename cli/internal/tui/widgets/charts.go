// ABOUTME: Chart renderers shared by the CLI commands and the TUI
// ABOUTME: Scatter grid of savings by code changes and environments, and stacked cost bars

package widgets

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/styles"
)

var (
	gridHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	gridCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ScatterGrid lays points out as code changes (rows) by environments (columns).
// Cells holding several rows list each savings value.
func ScatterGrid(points []models.ScatterPoint) string {
	changes, envs := scatterAxes(points)
	cells := make(map[[2]float64][]string)
	for _, p := range points {
		key := [2]float64{p.CodeChanges, p.EnvCount}
		cells[key] = append(cells[key], fmt.Sprintf("%.0f%%", p.SavingsPercent))
	}

	headers := []string{"Changes \\ Envs"}
	for _, e := range envs {
		headers = append(headers, formatNumber(e))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return gridHeaderStyle
			}
			return gridCellStyle
		})
	for _, ch := range changes {
		row := []string{formatNumber(ch)}
		for _, e := range envs {
			row = append(row, strings.Join(cells[[2]float64{ch, e}], " "))
		}
		t.Row(row...)
	}
	return t.String()
}

// scatterAxes returns the distinct code-change and environment values, ascending
func scatterAxes(points []models.ScatterPoint) ([]float64, []float64) {
	seenC := make(map[float64]bool)
	seenE := make(map[float64]bool)
	var changes, envs []float64
	for _, p := range points {
		if !seenC[p.CodeChanges] {
			seenC[p.CodeChanges] = true
			changes = append(changes, p.CodeChanges)
		}
		if !seenE[p.EnvCount] {
			seenE[p.EnvCount] = true
			envs = append(envs, p.EnvCount)
		}
	}
	sort.Float64s(changes)
	sort.Float64s(envs)
	return changes, envs
}

// CostBars draws stacked compute and storage bars scaled to the largest total
func CostBars(bars []models.CostBar, width int) string {
	maxTotal := 0.0
	labelWidth := 0
	for _, b := range bars {
		maxTotal = max(maxTotal, b.Total())
		labelWidth = max(labelWidth, len(b.Label))
	}

	var sb strings.Builder
	for _, b := range bars {
		compute, storage := 0, 0
		if maxTotal > 0 {
			compute = int(b.Compute / maxTotal * float64(width))
			storage = int(b.Storage / maxTotal * float64(width))
		}
		fmt.Fprintf(&sb, "%-*s %s%s $%.2f\n", labelWidth, b.Label,
			styles.ComputeBar.Render(strings.Repeat("█", compute)),
			styles.StorageBar.Render(strings.Repeat("█", storage)),
			b.Total())
	}
	return sb.String()
}

// CostLegend labels the two segments of a cost bar
func CostLegend() string {
	return styles.ComputeBar.Render("█") + " compute  " + styles.StorageBar.Render("█") + " storage"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
