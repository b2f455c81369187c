// ABOUTME: Summary pane showing headline figures of the scenario table
// ABOUTME: Average savings, savings by row, and the last-added scenario's ROI

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/icons"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/styles"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/widgets"
)

// Dashboard displays table summary metrics
type Dashboard struct {
	summary *models.TableSummary
	savings []float64
	width   int
	height  int
}

// New creates a summary pane. A nil summary renders a loading message.
func New(summary *models.TableSummary, rows []models.ScenarioRow, width, height int) *Dashboard {
	d := &Dashboard{width: width, height: height}
	d.Update(summary, rows)
	return d
}

// Update replaces the displayed summary and row savings
func (d *Dashboard) Update(summary *models.TableSummary, rows []models.ScenarioRow) {
	d.summary = summary
	d.savings = d.savings[:0]
	for _, row := range rows {
		d.savings = append(d.savings, row.SavingsPercent)
	}
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.summary == nil {
		return lipgloss.NewStyle().Width(d.width).Render("Loading scenario table...")
	}

	config := widgets.DefaultMetricBlockConfig()
	config.Width = max(d.width, 20)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Summary"))
	sb.WriteString("\n")

	sb.WriteString(widgets.MetricBlock(icons.Rows, "Scenarios",
		fmt.Sprintf("%d", d.summary.RowCount), "rows in table", config))
	sb.WriteString("\n")

	sb.WriteString(widgets.MetricBlockWithBar(icons.Savings, "Average savings",
		d.summary.AverageSavingsPercent, "of baseline cost", config))
	sb.WriteString("\n")

	if len(d.savings) > 0 {
		last := d.savings[len(d.savings)-1]
		sb.WriteString(widgets.MetricBlockWithSparkline(icons.Chart, "Savings by row",
			fmt.Sprintf("%.0f%%", last), d.savings, "newest on the right", config))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(d.viewLast())

	return lipgloss.NewStyle().
		Width(d.width).
		MaxHeight(max(d.height, 1)).
		Render(sb.String())
}

// viewLast renders the last-added scenario figures
func (d *Dashboard) viewLast() string {
	if !d.summary.HasLast {
		return styles.Subtitle.Render("Add a scenario to see its savings and ROI.")
	}

	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render("Last added"))
	sb.WriteString("\n")

	lastPct := 0.0
	if len(d.savings) > 0 {
		lastPct = d.savings[len(d.savings)-1]
	}
	fmt.Fprintf(&sb, "%s Savings  %s %s\n", icons.Savings.String(),
		styles.ValueStyle.Render(fmt.Sprintf("$%.2f", d.summary.SavingsAmount)),
		widgets.TrendIndicator(lastPct, d.summary.AverageSavingsPercent))
	if d.summary.ToolingInvestment != nil {
		fmt.Fprintf(&sb, "%s Tooling  %s\n", icons.Compute.String(),
			styles.ValueStyle.Render(fmt.Sprintf("$%.2f", *d.summary.ToolingInvestment)))
	}
	sb.WriteString(widgets.ROIBadge(d.summary.ReturnOnInvestment))
	return sb.String()
}
