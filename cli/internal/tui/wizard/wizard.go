// ABOUTME: Scenario input wizard as a bubbletea model
// ABOUTME: Uses huh forms with a visual progress indicator to collect the seven scenario inputs

package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/icons"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/tui/styles"
)

// customPreset is the select value for starting from blank inputs
const customPreset = ""

// WizardCompleteMsg is sent when the wizard finishes successfully
type WizardCompleteMsg struct {
	Input models.ScenarioInput
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard manages the scenario input flow as a bubbletea model
type Wizard struct {
	presets []models.Preset
	form    *huh.Form
	step    int
	width   int

	// Form field values (strings for huh)
	preset      string
	dataModels  string
	dataVolume  string
	codeChanges string
	envCount    string
	rollbacks   string
	ratio       string
	tooling     string
}

// Step names for progress indicator
var stepNames = []string{"Starting Point", "Workload", "Environments & Costs"}

// createTheme returns a custom huh theme matching the TUI palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := styles.Primary
	accent := styles.Accent
	info := styles.Info
	muted := lipgloss.Color("#9CA3AF")
	text := lipgloss.Color("#E5E7EB")
	danger := styles.Danger
	surface := styles.Surface

	// Group styles (section headers)
	t.Group.Title = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(muted).
		MarginBottom(1)

	// Focused field styles
	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(danger)

	// Select field styles
	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)
	t.Focused.NextIndicator = lipgloss.NewStyle().
		Foreground(primary).
		MarginLeft(1).
		SetString("→")
	t.Focused.PrevIndicator = lipgloss.NewStyle().
		Foreground(primary).
		MarginRight(1).
		SetString("←")

	// Text input styles
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(text)

	// Button styles
	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(info).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(muted).
		Background(surface).
		Padding(0, 2).
		MarginRight(1)

	// Blurred field styles (inherit from focused with muted colors)
	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(muted)

	return t
}

// New creates a wizard offering presets as starting points.
// The first preset prefills the inputs.
func New(presets []models.Preset) *Wizard {
	w := &Wizard{
		presets: presets,
		step:    1,
	}
	if len(presets) > 0 {
		w.preset = presets[0].Name
	}
	w.applyPreset()

	w.form = w.createStep1Form()
	return w
}

// applyPreset copies the selected preset into the form fields
func (w *Wizard) applyPreset() {
	for _, p := range w.presets {
		if p.Name != w.preset {
			continue
		}
		w.dataModels = formatNumber(p.Input.DataModels)
		w.dataVolume = formatNumber(p.Input.DataVolume)
		w.codeChanges = formatNumber(p.Input.CodeChanges)
		w.envCount = formatNumber(p.Input.EnvCount)
		w.rollbacks = formatNumber(p.Input.Rollbacks)
		w.ratio = formatNumber(p.Input.ComputeToStorageRatio)
		w.tooling = ""
		if p.Input.ToolingInvestment != nil {
			w.tooling = formatNumber(*p.Input.ToolingInvestment)
		}
		return
	}
}

func (w *Wizard) createStep1Form() *huh.Form {
	options := make([]huh.Option[string], 0, len(w.presets)+1)
	for _, p := range w.presets {
		options = append(options, huh.NewOption(p.Name, p.Name))
	}
	options = append(options, huh.NewOption("Custom (keep current values)", customPreset))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start from").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(options...).
				Value(&w.preset),
		).Title("Step 1: Starting Point").
			Description("Pick a preset to prefill the inputs, then adjust them"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data models").
				Description("Number of models in the warehouse").
				Value(&w.dataModels).
				Validate(validatePositive),
			huh.NewInput().
				Title("Data volume (GB)").
				Value(&w.dataVolume).
				Validate(validateNonNegative),
			huh.NewInput().
				Title("Code changes per month").
				Value(&w.codeChanges).
				Validate(validateNonNegative),
		).Title("Step 2: Workload").
			Description("Size of the warehouse and how often it changes"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep3Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Environments").
				Description("Deployed copies of the warehouse").
				Value(&w.envCount).
				Validate(validatePositive),
			huh.NewInput().
				Title("Rollbacks per month").
				Value(&w.rollbacks).
				Validate(w.validateRollbacks),
			huh.NewInput().
				Title("Compute-to-storage ratio").
				Description("Compute spend per dollar of storage").
				Value(&w.ratio).
				Validate(validateNonNegative),
			huh.NewInput().
				Title("Tooling investment (optional)").
				Description("Leave empty to skip ROI").
				Value(&w.tooling).
				Validate(validateOptionalPositive),
		).Title("Step 3: Environments & Costs").
			Description("Where changes are deployed and what compute costs"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		// Forward to form
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	// Update the current form
	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	// Check if form is complete
	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.applyPreset()
		w.step = 2
		w.form = w.createStep2Form()
		return w, w.form.Init()

	case 2:
		w.step = 3
		w.form = w.createStep3Form()
		return w, w.form.Init()

	case 3:
		input, err := w.BuildInput()
		if err != nil {
			// Field validation should prevent this; restart the step
			w.form = w.createStep3Form()
			return w, w.form.Init()
		}
		return w, func() tea.Msg {
			return WizardCompleteMsg{Input: input}
		}
	}

	return w, nil
}

// BuildInput parses the collected fields into a scenario input
func (w *Wizard) BuildInput() (models.ScenarioInput, error) {
	var input models.ScenarioInput
	fields := []struct {
		name  string
		raw   string
		value *float64
	}{
		{"data models", w.dataModels, &input.DataModels},
		{"data volume", w.dataVolume, &input.DataVolume},
		{"code changes", w.codeChanges, &input.CodeChanges},
		{"environments", w.envCount, &input.EnvCount},
		{"rollbacks", w.rollbacks, &input.Rollbacks},
		{"ratio", w.ratio, &input.ComputeToStorageRatio},
	}
	for _, f := range fields {
		v, err := parseNumber(f.raw)
		if err != nil {
			return input, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.value = v
	}

	if strings.TrimSpace(w.tooling) != "" {
		v, err := parseNumber(w.tooling)
		if err != nil {
			return input, fmt.Errorf("tooling investment: %w", err)
		}
		input.ToolingInvestment = models.Tooling(v)
	}
	return input, nil
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	// Progress indicator
	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")

	// Form content
	sb.WriteString(w.form.View())

	return sb.String()
}
// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	// Use width - 1 to ensure progress box fits within the frame
	// (w.width is already a.width - 1, so this gives a.width - 2 total)
	width := w.width - 1
	if width < 60 {
		width = 60
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	// Build step indicators
	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		if stepNum < w.step {
			// Completed step
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		} else if stepNum == w.step {
			// Current step
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		} else {
			// Future step
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}

	stepsLine := strings.Join(steps, "    ")

	// Progress bar line format: "│  " + bar + " │" = 5 chars overhead
	barWidth := width - 5
	totalSteps := len(stepNames)
	filledWidth := (w.step * barWidth) / totalSteps
	emptyWidth := barWidth - filledWidth

	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", emptyWidth))
	progressBar := filledBar + emptyBar

	// Build panel with consistent width
	styledTitle := titleStyle.Render("Progress")
	titleWidth := lipgloss.Width("Progress")

	// Top border: "┌─ " + title + " " + fill + "┐"
	// Total = 3 + titleWidth + 1 + fillWidth + 1 = width
	topFillWidth := max(0, width-5-titleWidth)
	topBorder := "┌─ " + styledTitle + " " + strings.Repeat("─", topFillWidth) + "┐"

	// Steps line: "│ " + content + padding + " │" = 4 chars overhead
	stepsLineWidth := lipgloss.Width(stepsLine)
	stepsPadding := max(0, width-4-stepsLineWidth)
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", stepsPadding) + " │"

	// Progress line: "│  " + bar + " │" (extra indent for visual alignment)
	progressLinePadded := "│  " + progressBar + " │"

	// Bottom border: "└" + fill + "┘"
	bottomFillWidth := width - 2
	bottomBorder := "└" + strings.Repeat("─", bottomFillWidth) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("must be a number")
	}
	return v, nil
}

func validatePositive(s string) error {
	v, err := parseNumber(s)
	if err != nil {
		return err
	}
	if v <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func validateNonNegative(s string) error {
	v, err := parseNumber(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func validateOptionalPositive(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validatePositive(s)
}

// validateRollbacks rejects a month with neither code changes nor rollbacks
func (w *Wizard) validateRollbacks(s string) error {
	if err := validateNonNegative(s); err != nil {
		return err
	}
	rollbacks, _ := parseNumber(s)
	changes, err := parseNumber(w.codeChanges)
	if err == nil && changes+rollbacks == 0 {
		return errors.New("code changes and rollbacks cannot both be zero")
	}
	return nil
}
