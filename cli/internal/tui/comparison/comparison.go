// ABOUTME: Breakdown view comparing one row's costs with VDB disabled and enabled
// ABOUTME: Shows side-by-side cost columns, stacked bars, and savings deltas

package comparison

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/styles"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/widgets"
)

// Comparison displays the cost breakdown of a single table row
type Comparison struct {
	breakdown *models.CostBreakdown
	row       *models.ScenarioRow
	width     int
}

// New creates a breakdown view. row may be nil when only the chart data is known.
func New(breakdown *models.CostBreakdown, row *models.ScenarioRow, width int) *Comparison {
	return &Comparison{
		breakdown: breakdown,
		row:       row,
		width:     width,
	}
}

// View renders the comparison
func (c *Comparison) View() string {
	if c.breakdown == nil {
		return "No breakdown data"
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("Row %d Cost Breakdown", c.breakdown.Index)))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(c.breakdown.Configuration))
	sb.WriteString("\n\n")

	if c.row != nil {
		colWidth := max((c.width-4)/2, 20)
		baseline := c.renderColumn("VDB Disabled", c.row.StorageCostBaseline, c.row.ComputeCostBaseline, c.row.TotalCostBaseline, colWidth)
		optimized := c.renderColumn("VDB Enabled", c.row.StorageCostOptimized, c.row.ComputeCostOptimized, c.row.TotalCostOptimized, colWidth)
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, baseline, "  ", optimized))
		sb.WriteString("\n\n")
	}

	sb.WriteString(widgets.CostBars(c.breakdown.Bars, max(c.width-30, 10)))
	sb.WriteString(widgets.CostLegend())
	sb.WriteString("\n")

	if c.row != nil {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Changes"))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  Storage: %s\n", widgets.DeltaBadge(c.row.StorageCostOptimized-c.row.StorageCostBaseline))
		fmt.Fprintf(&sb, "  Compute: %s\n", widgets.DeltaBadge(c.row.ComputeCostOptimized-c.row.ComputeCostBaseline))
		fmt.Fprintf(&sb, "  Savings: %s\n", widgets.StatusText(
			fmt.Sprintf("$%.2f (%.2f%%)", c.row.SavingsAmount, c.row.SavingsPercent),
			widgets.SavingsLevel(c.row.SavingsPercent)))
		if c.row.ToolingInvestment != nil {
			fmt.Fprintf(&sb, "  Tooling: $%.2f  %s\n", *c.row.ToolingInvestment, widgets.ROIBadge(c.row.ReturnOnInvestment))
		}
	}

	return lipgloss.NewStyle().Width(c.width).Render(sb.String())
}

func (c *Comparison) renderColumn(title string, storage, compute, total float64, width int) string {
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render(title))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Storage: $%.2f\n", storage)
	fmt.Fprintf(&sb, "Compute: $%.2f\n", compute)
	fmt.Fprintf(&sb, "Total:   %s", styles.ValueStyle.Render(fmt.Sprintf("$%.2f", total)))
	return lipgloss.NewStyle().Width(width).Render(sb.String())
}
