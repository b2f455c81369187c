// ABOUTME: Root bubbletea model for the scenario table TUI
// ABOUTME: Manages screen state, backend calls, and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/client"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/comparison"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/dashboard"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/debuglog"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/icons"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/styles"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/widgets"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenTable Screen = iota
	ScreenWizard
	ScreenScatter
	ScreenBreakdown
)

// Layout constants
const (
	minTerminalWidth = 80 // Below this the summary pane stacks under the table
	summaryWidth     = 34
	panelPadding     = 4 // Border plus padding of a panel, both sides
	requestTimeout   = 15 * time.Second
)

// tableLoadedMsg carries a fresh copy of the table and its summary
type tableLoadedMsg struct {
	state   *models.TableState
	summary *models.TableSummary
	err     error
}

type presetsLoadedMsg struct {
	presets []models.Preset
	err     error
}

type appendedMsg struct {
	result *models.AppendResult
	err    error
}

type removedMsg struct {
	index  int
	result *models.RemoveResult
	err    error
}

type resetMsg struct {
	state *models.TableState
	err   error
}

type scatterLoadedMsg struct {
	points []models.ScatterPoint
	err    error
}

type breakdownLoadedMsg struct {
	breakdown *models.CostBreakdown
	err       error
}

// App is the root model for the TUI
type App struct {
	client     *client.Client
	screen     Screen
	width      int
	height     int
	lastUpdate time.Time

	state   models.TableState
	summary *models.TableSummary
	presets []models.Preset
	points  []models.ScatterPoint

	status      string
	statusLevel widgets.StatusLevel

	// Child models
	table        table.Model
	dashboard    *dashboard.Dashboard
	compView     *comparison.Comparison
	wizardScreen *wizard.Wizard
}

// New creates a new TUI application
func New(apiClient *client.Client) *App {
	t := table.New(
		table.WithColumns(tableColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = styles.TableHeader
	s.Selected = styles.TableSelected
	t.SetStyles(s)

	return &App{
		client:    apiClient,
		screen:    ScreenTable,
		table:     t,
		dashboard: dashboard.New(nil, nil, summaryWidth, 10),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadTable(), a.loadPresets())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		if a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenTable:
			return a.updateTable(msg)
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenScatter, ScreenBreakdown:
			return a.updateChart(msg)
		}

	case tableLoadedMsg:
		if msg.err != nil {
			a.setError("load table", msg.err)
			return a, nil
		}
		a.applyTable(*msg.state)
		a.summary = msg.summary
		a.dashboard.Update(a.summary, a.state.Rows)
		a.lastUpdate = time.Now()
		return a, nil

	case presetsLoadedMsg:
		if msg.err != nil {
			a.setError("load presets", msg.err)
			return a, nil
		}
		a.presets = msg.presets
		return a, nil

	case appendedMsg:
		if msg.err != nil {
			a.setError("append", msg.err)
			return a, nil
		}
		a.applyTable(msg.result.Table)
		a.table.SetCursor(len(a.state.Rows) - 1)
		a.setStatus(fmt.Sprintf("Added #%d %s, saves $%.2f (%.2f%%)", len(a.state.Rows)-1,
			rowName(msg.result.Row), msg.result.Row.SavingsAmount, msg.result.Row.SavingsPercent), widgets.StatusOK)
		return a, a.loadTable()

	case removedMsg:
		if msg.err != nil {
			a.setError("remove", msg.err)
			return a, nil
		}
		a.applyTable(msg.result.Table)
		if msg.result.Warning != "" {
			a.setStatus(msg.result.Warning, widgets.StatusWarning)
		} else if msg.result.Removed != nil {
			a.setStatus(fmt.Sprintf("Removed #%d %s", msg.index, rowName(*msg.result.Removed)), widgets.StatusOK)
		}
		return a, a.loadTable()

	case resetMsg:
		if msg.err != nil {
			a.setError("reset", msg.err)
			return a, nil
		}
		a.applyTable(*msg.state)
		a.table.SetCursor(0)
		a.setStatus(fmt.Sprintf("Table reset to %d presets", len(msg.state.Rows)), widgets.StatusInfo)
		return a, a.loadTable()

	case scatterLoadedMsg:
		if msg.err != nil {
			a.setError("scatter", msg.err)
			return a, nil
		}
		a.points = msg.points
		a.screen = ScreenScatter
		return a, nil

	case breakdownLoadedMsg:
		if msg.err != nil {
			a.setError("breakdown", msg.err)
			return a, nil
		}
		var row *models.ScenarioRow
		if msg.breakdown.Index < len(a.state.Rows) {
			row = &a.state.Rows[msg.breakdown.Index]
		}
		a.compView = comparison.New(msg.breakdown, row, a.width-panelPadding)
		a.screen = ScreenBreakdown
		return a, nil

	case wizard.WizardCompleteMsg:
		a.wizardScreen = nil
		a.screen = ScreenTable
		return a, a.appendScenario(msg.Input)

	case wizard.WizardCancelledMsg:
		a.wizardScreen = nil
		a.screen = ScreenTable
		return a, nil

	default:
		// huh forms need their internal messages
		if a.screen == ScreenWizard && a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
	}

	return a, nil
}

func (a *App) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "a":
		return a, a.runWizard()
	case "d", "delete":
		return a, a.removeRow(a.table.Cursor())
	case "R":
		return a, a.resetTable()
	case "r":
		return a, a.loadTable()
	case "s":
		return a, a.loadScatter()
	case "enter", "b":
		if len(a.state.Rows) == 0 {
			a.setStatus("Table is empty", widgets.StatusWarning)
			return a, nil
		}
		return a, a.loadBreakdown(a.table.Cursor())
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

func (a *App) updateChart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "backspace":
		a.screen = ScreenTable
		a.compView = nil
	}
	return a, nil
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.wizardScreen == nil {
		return a, nil
	}
	model, cmd := a.wizardScreen.Update(msg)
	a.wizardScreen = model.(*wizard.Wizard)
	return a, cmd
}

// applyTable swaps in a new table state and rebuilds the table rows
func (a *App) applyTable(state models.TableState) {
	a.state = state
	a.table.SetRows(tableRows(state))
	if cursor := a.table.Cursor(); cursor >= len(state.Rows) && len(state.Rows) > 0 {
		a.table.SetCursor(len(state.Rows) - 1)
	}
}

func (a *App) setStatus(text string, level widgets.StatusLevel) {
	a.status = text
	a.statusLevel = level
}

func (a *App) setError(op string, err error) {
	debuglog.Error(op, err)
	a.setStatus(err.Error(), widgets.StatusCritical)
}

// resize fits the table and summary panes to the terminal
func (a *App) resize() {
	a.table.SetWidth(a.tableWidth())
	a.table.SetHeight(max(a.contentHeight()-2, 3))
	a.dashboard.SetSize(summaryWidth-panelPadding, a.contentHeight())
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenWizard:
		content = a.viewWizard()
	case ScreenScatter:
		content = a.viewScatter()
	case ScreenBreakdown:
		content = a.viewBreakdown()
	default:
		content = a.viewTable()
	}

	return a.wrapWithFrame(content)
}

// viewTable renders the scenario table with the summary pane
func (a *App) viewTable() string {
	left := styles.ActivePanel.Render(a.table.View())
	right := styles.Panel.Width(summaryWidth - 2).Render(a.dashboard.View())

	if a.width < minTerminalWidth {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a *App) viewWizard() string {
	if a.wizardScreen != nil {
		return a.wizardScreen.View()
	}
	return ""
}

func (a *App) viewScatter() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.Chart.String() + " Savings by Code Changes and Environments"))
	sb.WriteString("\n")
	if len(a.points) == 0 {
		sb.WriteString("Table is empty.")
	} else {
		sb.WriteString(widgets.ScatterGrid(a.points))
	}
	return styles.ActivePanel.Render(sb.String())
}

func (a *App) viewBreakdown() string {
	if a.compView == nil {
		return ""
	}
	return styles.ActivePanel.Render(a.compView.View())
}

// frameWidth is one less than the terminal so the frame never wraps
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

// tableWidth is the space left of the summary pane
func (a *App) tableWidth() int {
	if a.width < minTerminalWidth {
		return max(a.width-panelPadding, 20)
	}
	return a.width - summaryWidth - panelPadding - 2
}

// contentHeight is the height between the header and the footer
func (a *App) contentHeight() int {
	// header, status line, footer, and panel borders
	return a.height - 6
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftRendered := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("VDB Benchmark"))

	rightRendered := ""
	if a.client != nil {
		if id := a.client.SessionID(); id != "" {
			rightRendered = " " + contextStyle.Render("session "+shortID(id)) + " "
		}
	}

	fillWidth := max(width-4-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 0)
	return borderStyle.Render("╭─") + leftRendered +
		borderStyle.Render(strings.Repeat("─", fillWidth)) + rightRendered + borderStyle.Render("─╮")
}

// renderFooter creates the footer with keyboard shortcuts and last refresh time
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenTable:
		shortcuts = []string{"a Add", "d Remove", "enter Breakdown", "s Scatter", "R Reset", "q Quit"}
	case ScreenWizard:
		shortcuts = []string{"enter Confirm", "esc Cancel"}
	case ScreenScatter, ScreenBreakdown:
		shortcuts = []string{"esc Back", "q Quit"}
	}

	var styled []string
	for _, s := range shortcuts {
		key, label, _ := strings.Cut(s, " ")
		styled = append(styled, styles.KeyStyle.Render(key)+" "+labelStyle.Render(label))
	}
	left := " " + strings.Join(styled, "  ") + " "

	right := ""
	if !a.lastUpdate.IsZero() && a.screen == ScreenTable {
		right = " " + statusStyle.Render("Updated "+formatTimeSince(a.lastUpdate)) + " "
	}

	fillWidth := max(width-4-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return borderStyle.Render("╰─") + left +
		borderStyle.Render(strings.Repeat("─", fillWidth)) + right + borderStyle.Render("─╯")
}

func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	return " " + widgets.StatusText(a.status, a.statusLevel)
}

// formatTimeSince formats a duration since t in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

// wrapWithFrame wraps content with header, status line, and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

func tableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 9},
		{Title: "Models", Width: 7},
		{Title: "GB", Width: 7},
		{Title: "Changes", Width: 7},
		{Title: "Envs", Width: 4},
		{Title: "Rollbk", Width: 6},
		{Title: "Ratio", Width: 5},
		{Title: "Baseline", Width: 10},
		{Title: "With VDB", Width: 10},
		{Title: "Savings", Width: 8},
	}
}

// tableRows formats each row; the last-added row is marked with *
func tableRows(state models.TableState) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for i, row := range state.Rows {
		idx := strconv.Itoa(i)
		if state.Last != nil && state.Last.ID == row.ID {
			idx += "*"
		}
		rows = append(rows, table.Row{
			idx,
			rowName(row),
			formatNumber(row.DataModels),
			formatNumber(row.DataVolume),
			formatNumber(row.CodeChanges),
			formatNumber(row.EnvCount),
			formatNumber(row.Rollbacks),
			formatNumber(row.ComputeToStorageRatio),
			fmt.Sprintf("$%.2f", row.TotalCostBaseline),
			fmt.Sprintf("$%.2f", row.TotalCostOptimized),
			fmt.Sprintf("%.2f%%", row.SavingsPercent),
		})
	}
	return rows
}

func rowName(row models.ScenarioRow) string {
	if row.Name == "" {
		return "custom"
	}
	return row.Name
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// runWizard transitions to the wizard screen
func (a *App) runWizard() tea.Cmd {
	a.wizardScreen = wizard.New(a.presets)
	a.wizardScreen.SetWidth(a.width - panelPadding)
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// loadTable fetches the table and its summary in one round
func (a *App) loadTable() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()

		state, err := a.client.Table(ctx)
		if err != nil {
			return tableLoadedMsg{err: err}
		}
		summary, err := a.client.Summary(ctx)
		return tableLoadedMsg{state: state, summary: summary, err: err}
	}
}

func (a *App) loadPresets() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()

		presets, err := a.client.Presets(ctx)
		return presetsLoadedMsg{presets: presets, err: err}
	}
}

func (a *App) appendScenario(input models.ScenarioInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()

		debuglog.Debug("append scenario", "data_models", input.DataModels, "code_changes", input.CodeChanges)
		result, err := a.client.Append(ctx, input)
		return appendedMsg{result: result, err: err}
	}
}

func (a *App) removeRow(index int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()

		result, err := a.client.Remove(ctx, index)
		return removedMsg{index: index, result: result, err: err}
	}
}

func (a *App) resetTable() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()

		state, err := a.client.Reset(ctx)
		return resetMsg{state: state, err: err}
	}
}

func (a *App) loadScatter() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()

		points, err := a.client.Scatter(ctx)
		return scatterLoadedMsg{points: points, err: err}
	}
}

func (a *App) loadBreakdown(index int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()

		breakdown, err := a.client.Breakdown(ctx, index)
		return breakdownLoadedMsg{breakdown: breakdown, err: err}
	}
}

// Run starts the TUI
func Run(apiClient *client.Client) error {
	p := tea.NewProgram(
		New(apiClient),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
