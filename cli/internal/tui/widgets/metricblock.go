// ABOUTME: Compact metric block widget for the summary pane
// ABOUTME: Combines icon, value, bar or sparkline, and subtitle in a bordered box

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/icons"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/styles"
)

const defaultBlockWidth = 26

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       defaultBlockWidth,
		BorderColor: styles.Muted,
		TitleColor:  styles.Primary,
		ValueColor:  styles.Text,
	}
}

// MetricBlock renders a compact metric display block
func MetricBlock(icon icons.Icon, title, value, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = defaultBlockWidth
	}
	innerWidth := config.Width - 4

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	return frameBlock(icon, title, config, innerWidth,
		padLine(valueStyle.Render(value), innerWidth),
		padLine(styles.Subtitle.Render(truncate(subtitle, innerWidth)), innerWidth),
	)
}

// MetricBlockWithBar renders a savings percentage with a bar colored by SavingsLevel
func MetricBlockWithBar(icon icons.Icon, title string, percent float64, details string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = defaultBlockWidth
	}
	innerWidth := config.Width - 4

	level := SavingsLevel(percent)
	color := levelColor(level)
	value := lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%.2f%%", percent)) +
		" " + StatusIcon(level)

	return frameBlock(icon, title, config, innerWidth,
		padLine(value, innerWidth),
		padLine(CompactProgressBar(percent, innerWidth, color), innerWidth),
		padLine(styles.Subtitle.Render(truncate(details, innerWidth)), innerWidth),
	)
}

// MetricBlockWithSparkline renders a value followed by a sparkline of its history
func MetricBlockWithSparkline(icon icons.Icon, title, value string, sparkData []float64, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = defaultBlockWidth
	}
	innerWidth := config.Width - 4
	sparkWidth := max(1, min(len(sparkData), innerWidth-lipgloss.Width(value)-2))

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	line := valueStyle.Render(value) + "  " + Sparkline(sparkData, sparkWidth, styles.Primary)

	return frameBlock(icon, title, config, innerWidth,
		padLine(line, innerWidth),
		padLine(styles.Subtitle.Render(truncate(subtitle, innerWidth)), innerWidth),
	)
}

// CompactProgressBar renders a minimal bar for tight spaces
func CompactProgressBar(percent float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}
	percent = min(max(percent, 0), 100)

	filled := int(percent / 100.0 * float64(width))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("░", width-filled))
}

// frameBlock draws the box with the title set into the top border
func frameBlock(icon icons.Icon, title string, config MetricBlockConfig, innerWidth int, lines ...string) string {
	titleStr := truncate(fmt.Sprintf("%s %s", icon.String(), title), innerWidth)
	titleStyle := lipgloss.NewStyle().Foreground(config.TitleColor)
	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	out := make([]string, 0, len(lines)+2)
	out = append(out, borderStyle.Render("┌─ ")+titleStyle.Render(titleStr)+
		borderStyle.Render(" "+strings.Repeat("─", max(0, innerWidth-lipgloss.Width(titleStr)-1))+"┐"))
	for _, l := range lines {
		out = append(out, borderStyle.Render("│ ")+l+borderStyle.Render(" │"))
	}
	out = append(out, borderStyle.Render("└"+strings.Repeat("─", config.Width-2)+"┘"))
	return strings.Join(out, "\n")
}

// padLine right-pads styled content to width visible cells
func padLine(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

// truncate shortens a string to maxLen with ellipsis if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
