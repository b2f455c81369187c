// ABOUTME: Tests for scenario wizard
// ABOUTME: Validates preset prefill, input parsing, and field validation

package wizard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

func testPresets() []models.Preset {
	return []models.Preset{
		{Name: "Small", Input: models.ScenarioInput{
			DataModels: 200, DataVolume: 100, CodeChanges: 40,
			EnvCount: 2, Rollbacks: 1, ComputeToStorageRatio: 7,
			ToolingInvestment: models.Tooling(20),
		}},
		{Name: "Medium", Input: models.ScenarioInput{
			DataModels: 1000, DataVolume: 10000, CodeChanges: 300,
			EnvCount: 3, Rollbacks: 3, ComputeToStorageRatio: 7,
		}},
	}
}

func TestWizardDefaultsFromFirstPreset(t *testing.T) {
	w := New(testPresets())

	if w.step != 1 {
		t.Errorf("expected step 1, got %d", w.step)
	}
	if w.preset != "Small" {
		t.Errorf("expected preset Small, got %q", w.preset)
	}
	if w.dataModels != "200" || w.envCount != "2" || w.tooling != "20" {
		t.Errorf("unexpected prefill: models=%s envs=%s tooling=%s", w.dataModels, w.envCount, w.tooling)
	}
}

func TestWizardApplyPreset(t *testing.T) {
	w := New(testPresets())
	w.preset = "Medium"
	w.applyPreset()

	if w.dataVolume != "10000" {
		t.Errorf("expected data volume 10000, got %s", w.dataVolume)
	}
	if w.tooling != "" {
		t.Errorf("expected tooling cleared for preset without it, got %q", w.tooling)
	}
}

func TestWizardCustomKeepsValues(t *testing.T) {
	w := New(testPresets())
	w.dataModels = "5"
	w.preset = customPreset
	w.applyPreset()

	if w.dataModels != "5" {
		t.Errorf("expected custom start to keep values, got %s", w.dataModels)
	}
}

func TestWizardNoPresets(t *testing.T) {
	w := New(nil)

	if w.form == nil {
		t.Fatal("expected a form even without presets")
	}
	if _, err := w.BuildInput(); err == nil {
		t.Error("expected error building input from empty fields")
	}
}

func TestWizardBuildInput(t *testing.T) {
	w := &Wizard{
		dataModels:  "50",
		dataVolume:  "100",
		codeChanges: "15",
		envCount:    "2",
		rollbacks:   "1",
		ratio:       "7",
		tooling:     " 10 ",
	}

	input, err := w.BuildInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.DataModels != 50 || input.CodeChanges != 15 || input.ComputeToStorageRatio != 7 {
		t.Errorf("unexpected input %+v", input)
	}
	if input.ToolingInvestment == nil || *input.ToolingInvestment != 10 {
		t.Errorf("expected tooling 10, got %v", input.ToolingInvestment)
	}
}

func TestWizardBuildInput_NoTooling(t *testing.T) {
	w := &Wizard{
		dataModels: "1", dataVolume: "1", codeChanges: "1",
		envCount: "1", rollbacks: "0", ratio: "1",
	}

	input, err := w.BuildInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.ToolingInvestment != nil {
		t.Errorf("expected no tooling, got %v", *input.ToolingInvestment)
	}
}

func TestWizardBuildInput_BadNumber(t *testing.T) {
	w := &Wizard{
		dataModels: "lots", dataVolume: "1", codeChanges: "1",
		envCount: "1", rollbacks: "0", ratio: "1",
	}

	if _, err := w.BuildInput(); err == nil {
		t.Error("expected error for non-numeric data models")
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}{
		{"positive ok", validatePositive, "3", false},
		{"positive zero", validatePositive, "0", true},
		{"positive text", validatePositive, "abc", true},
		{"non-negative zero", validateNonNegative, "0", false},
		{"non-negative negative", validateNonNegative, "-1", true},
		{"optional empty", validateOptionalPositive, "", false},
		{"optional zero", validateOptionalPositive, "0", true},
		{"optional decimal", validateOptionalPositive, "12.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRollbacks(t *testing.T) {
	w := &Wizard{codeChanges: "0"}

	if err := w.validateRollbacks("0"); err == nil {
		t.Error("expected error when changes and rollbacks are both zero")
	}
	if err := w.validateRollbacks("2"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	w.codeChanges = "5"
	if err := w.validateRollbacks("0"); err != nil {
		t.Errorf("unexpected error with code changes set: %v", err)
	}
}

func TestWizardEscCancels(t *testing.T) {
	w := New(testPresets())

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(WizardCancelledMsg); !ok {
		t.Error("expected WizardCancelledMsg")
	}
}

func TestWizardView(t *testing.T) {
	w := New(testPresets())
	w.SetWidth(80)

	view := w.View()
	if view == "" {
		t.Error("expected non-empty view")
	}
}
