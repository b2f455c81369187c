// ABOUTME: Built-in preset scenarios and an optional YAML preset file
// ABOUTME: PresetCatalog computes preset rows once and seeds every new table from them

package services

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

// DefaultPresets returns the six built-in scenarios, smallest first
func DefaultPresets() []models.Preset {
	return []models.Preset{
		{Name: "X-Small", Input: models.ScenarioInput{
			DataModels: 50, DataVolume: 100, CodeChanges: 15, EnvCount: 2, Rollbacks: 1,
			ComputeToStorageRatio: 7, ToolingInvestment: models.Tooling(10),
		}},
		{Name: "Small", Input: models.ScenarioInput{
			DataModels: 200, DataVolume: 100, CodeChanges: 40, EnvCount: 2, Rollbacks: 1,
			ComputeToStorageRatio: 7, ToolingInvestment: models.Tooling(20),
		}},
		{Name: "Medium", Input: models.ScenarioInput{
			DataModels: 1000, DataVolume: 10000, CodeChanges: 300, EnvCount: 3, Rollbacks: 3,
			ComputeToStorageRatio: 7, ToolingInvestment: models.Tooling(100),
		}},
		{Name: "Medium 2", Input: models.ScenarioInput{
			DataModels: 5000, DataVolume: 30000, CodeChanges: 400, EnvCount: 4, Rollbacks: 3,
			ComputeToStorageRatio: 8, ToolingInvestment: models.Tooling(200),
		}},
		{Name: "Large", Input: models.ScenarioInput{
			DataModels: 3000, DataVolume: 100000, CodeChanges: 600, EnvCount: 5, Rollbacks: 5,
			ComputeToStorageRatio: 7, ToolingInvestment: models.Tooling(500),
		}},
		{Name: "Large 2", Input: models.ScenarioInput{
			DataModels: 1500, DataVolume: 800000, CodeChanges: 1000, EnvCount: 5, Rollbacks: 30,
			ComputeToStorageRatio: 12, ToolingInvestment: models.Tooling(1000),
		}},
	}
}

// presetFile is the on-disk layout of a preset file
type presetFile struct {
	Presets []models.Preset `yaml:"presets"`
}

// LoadPresets reads presets from a YAML file. An empty path yields DefaultPresets.
// Every preset must have a unique name and compute without error.
func LoadPresets(path string) ([]models.Preset, error) {
	if path == "" {
		return DefaultPresets(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("presets %s: no presets defined", path)
	}

	seen := make(map[string]bool, len(file.Presets))
	for i, p := range file.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("presets %s: entry %d has no name", path, i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("presets %s: duplicate name %q", path, p.Name)
		}
		seen[p.Name] = true
		if _, err := ComputeScenario(p.Input); err != nil {
			return nil, fmt.Errorf("presets %s: %q: %w", path, p.Name, err)
		}
	}

	slog.Info("Loaded presets from file", "path", path, "count", len(file.Presets))
	return file.Presets, nil
}

// PresetCatalog holds the presets and their computed results.
// Results are computed on first use and shared by every new table.
type PresetCatalog struct {
	presets []models.Preset
	results []models.ScenarioResult
	mu      sync.RWMutex
	sfGroup singleflight.Group
}

// NewPresetCatalog creates a catalog over presets
func NewPresetCatalog(presets []models.Preset) *PresetCatalog {
	return &PresetCatalog{presets: presets}
}

// Presets returns a copy of the catalog's presets
func (c *PresetCatalog) Presets() []models.Preset {
	out := make([]models.Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Len returns the number of presets
func (c *PresetCatalog) Len() int {
	return len(c.presets)
}

// NewTable returns a freshly seeded table with one row per preset and new row IDs
func (c *PresetCatalog) NewTable() (models.TableState, error) {
	results, err := c.computed()
	if err != nil {
		return models.TableState{}, err
	}

	rows := make([]models.ScenarioRow, len(results))
	for i, r := range results {
		rows[i] = models.ScenarioRow{
			ID:             uuid.NewString(),
			Name:           c.presets[i].Name,
			ScenarioResult: r,
		}
	}
	return models.TableState{Rows: rows}, nil
}

// computed returns the preset results, computing them once under singleflight
func (c *PresetCatalog) computed() ([]models.ScenarioResult, error) {
	c.mu.RLock()
	results := c.results
	c.mu.RUnlock()
	if results != nil {
		return results, nil
	}

	v, err, _ := c.sfGroup.Do("presets", func() (interface{}, error) {
		state, err := InitializeTable(c.presets)
		if err != nil {
			return nil, err
		}
		computed := make([]models.ScenarioResult, len(state.Rows))
		for i, row := range state.Rows {
			computed[i] = row.ScenarioResult
		}

		c.mu.Lock()
		c.results = computed
		c.mu.Unlock()

		slog.Debug("Computed preset scenarios", "count", len(computed))
		return computed, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.ScenarioResult), nil
}
