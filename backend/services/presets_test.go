// ABOUTME: Tests for preset loading and the preset catalog
// ABOUTME: Covers YAML parsing, validation errors, and shared computation

package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

func writePresetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write preset file: %v", err)
	}
	return path
}

func TestDefaultPresets_AllCompute(t *testing.T) {
	presets := DefaultPresets()
	if len(presets) != 6 {
		t.Fatalf("Expected 6 presets, got %d", len(presets))
	}
	for _, p := range presets {
		if p.Input.ToolingInvestment == nil {
			t.Errorf("%s: expected a tooling investment", p.Name)
		}
		if _, err := ComputeScenario(p.Input); err != nil {
			t.Errorf("%s: ComputeScenario failed: %v", p.Name, err)
		}
	}
}

func TestLoadPresets_EmptyPathUsesDefaults(t *testing.T) {
	presets, err := LoadPresets("")
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if len(presets) != 6 {
		t.Errorf("Expected 6 default presets, got %d", len(presets))
	}
}

func TestLoadPresets_FromYAML(t *testing.T) {
	path := writePresetFile(t, `
presets:
  - name: Tiny
    input:
      data_models: 10
      data_volume: 50
      code_changes: 5
      env_count: 1
      rollbacks: 0
      compute_to_storage_ratio: 3
      tooling_investment: 5
  - name: Wide
    input:
      data_models: 100
      data_volume: 2000
      code_changes: 20
      env_count: 6
      rollbacks: 2
      compute_to_storage_ratio: 9
`)

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("Expected 2 presets, got %d", len(presets))
	}
	if presets[0].Name != "Tiny" || presets[0].Input.DataVolume != 50 {
		t.Errorf("Unexpected first preset: %+v", presets[0])
	}
	if presets[0].Input.ToolingInvestment == nil || *presets[0].Input.ToolingInvestment != 5 {
		t.Errorf("Expected tooling investment 5, got %v", presets[0].Input.ToolingInvestment)
	}
	if presets[1].Input.ToolingInvestment != nil {
		t.Errorf("Expected no tooling investment, got %v", *presets[1].Input.ToolingInvestment)
	}
}

func TestLoadPresets_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"empty", "presets: []\n", "no presets"},
		{"missing name", "presets:\n  - input: {data_models: 1, data_volume: 1, code_changes: 1, env_count: 1}\n", "has no name"},
		{"duplicate", "presets:\n  - name: A\n    input: {data_models: 1, data_volume: 1, code_changes: 1, env_count: 1}\n  - name: A\n    input: {data_models: 1, data_volume: 1, code_changes: 1, env_count: 1}\n", "duplicate"},
		{"invalid input", "presets:\n  - name: A\n    input: {data_models: 0, data_volume: 1, code_changes: 1, env_count: 1}\n", "data_models"},
		{"bad yaml", "presets: [\n", "parse presets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPresets(writePresetFile(t, tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestLoadPresets_MissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestPresetCatalog_NewTable(t *testing.T) {
	catalog := NewPresetCatalog(DefaultPresets())

	first, err := catalog.NewTable()
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	second, err := catalog.NewTable()
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	if first.Len() != 6 || second.Len() != 6 {
		t.Fatalf("Expected 6 rows each, got %d and %d", first.Len(), second.Len())
	}
	if first.Rows[0].ID == second.Rows[0].ID {
		t.Error("Expected fresh row IDs per table")
	}
	if first.Rows[3].TotalCostOptimized != second.Rows[3].TotalCostOptimized {
		t.Error("Expected identical computed figures")
	}
}

func TestPresetCatalog_ConcurrentNewTable(t *testing.T) {
	catalog := NewPresetCatalog(DefaultPresets())

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state, err := catalog.NewTable()
			if err != nil {
				errs <- err
				return
			}
			if state.Len() != 6 {
				errs <- errors.New("wrong row count")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent NewTable: %v", err)
	}
}

func TestPresetCatalog_InvalidPreset(t *testing.T) {
	catalog := NewPresetCatalog([]models.Preset{{Name: "bad"}})

	if _, err := catalog.NewTable(); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
