// ABOUTME: Shared lipgloss styles for the vdb terminal UI and CLI output
// ABOUTME: Defines the palette plus panel, table, and status-line styles

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Palette
	Primary   = lipgloss.Color("#7C3AED") // Purple, compute
	Secondary = lipgloss.Color("#10B981") // Green, storage and savings
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Accent    = lipgloss.Color("#8B5CF6") // Lighter purple for highlights
	Surface   = lipgloss.Color("#374151") // Elevated surface background
	Info      = lipgloss.Color("#3B82F6") // Blue

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Scenario table (bubbles/table)
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Muted).
			BorderBottom(true)

	TableSelected = lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// Bars of the cost breakdown chart
	ComputeBar = lipgloss.NewStyle().Foreground(Primary)
	StorageBar = lipgloss.NewStyle().Foreground(Secondary)
)
