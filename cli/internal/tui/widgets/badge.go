// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Colors savings, ROI, and cost deltas as inline badges

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/icons"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/styles"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Savings thresholds, in percent of the baseline cost
const (
	GoodSavingsPercent = 30
	LowSavingsPercent  = 10
)

var badgeFg = lipgloss.Color("#FFFFFF")

func levelColor(level StatusLevel) lipgloss.Color {
	switch level {
	case StatusOK:
		return styles.Secondary
	case StatusWarning:
		return styles.Warning
	case StatusCritical:
		return styles.Danger
	case StatusInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	fg := badgeFg
	if level == StatusWarning {
		fg = lipgloss.Color("#000000")
	}

	return lipgloss.NewStyle().
		Background(levelColor(level)).
		Foreground(fg).
		Padding(0, 1).
		Bold(true).
		Render(text)
}

// SavingsLevel grades a savings percentage. Higher is better.
func SavingsLevel(percent float64) StatusLevel {
	switch {
	case percent >= GoodSavingsPercent:
		return StatusOK
	case percent >= LowSavingsPercent:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	var icon string
	switch level {
	case StatusOK:
		icon = icons.CheckOK.String()
	case StatusWarning:
		icon = icons.Warning.String()
	case StatusCritical:
		icon = icons.Critical.String()
	case StatusInfo:
		icon = icons.Info.String()
	default:
		icon = "•"
	}
	return lipgloss.NewStyle().Foreground(levelColor(level)).Render(icon)
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	textStyle := lipgloss.NewStyle().Foreground(levelColor(level))
	return fmt.Sprintf("%s %s", StatusIcon(level), textStyle.Render(text))
}

// ROIBadge renders the return on investment, or n/a when no tooling was entered
func ROIBadge(roi *float64) string {
	if roi == nil {
		return Badge("ROI n/a", StatusNeutral)
	}
	level := StatusOK
	if *roi < 0 {
		level = StatusCritical
	}
	return Badge(fmt.Sprintf("ROI %.2f%%", *roi), level)
}

// DeltaBadge renders a cost change. Decreases are good.
func DeltaBadge(delta float64) string {
	switch {
	case delta < 0:
		return Badge(fmt.Sprintf("-$%.2f", -delta), StatusOK)
	case delta > 0:
		return Badge(fmt.Sprintf("+$%.2f", delta), StatusWarning)
	default:
		return Badge("$0.00", StatusNeutral)
	}
}

// TrendIndicator compares a value to a reference. Up is good.
func TrendIndicator(current, reference float64) string {
	switch {
	case current > reference:
		return lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.TrendUp.String())
	case current < reference:
		return lipgloss.NewStyle().Foreground(styles.Warning).Render(icons.TrendDown.String())
	default:
		return lipgloss.NewStyle().Foreground(styles.Muted).Render("→")
	}
}
