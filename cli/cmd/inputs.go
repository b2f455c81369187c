// ABOUTME: Scenario input flags shared by compute and table add
// ABOUTME: Starts from an optional preset and applies explicitly set flags on top

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/cli/internal/client"
)

// scenarioFlags holds the seven scenario inputs plus a preset to start from
type scenarioFlags struct {
	preset      string
	dataModels  float64
	dataVolume  float64
	codeChanges float64
	envCount    float64
	rollbacks   float64
	ratio       float64
	tooling     float64
}

// required are the flags that must be given when no preset is used
var requiredInputFlags = []string{"data-models", "data-volume", "code-changes", "env-count", "ratio"}

func (f *scenarioFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.preset, "preset", "", "Start from a named preset (e.g. Small)")
	flags.Float64Var(&f.dataModels, "data-models", 0, "Number of data models")
	flags.Float64Var(&f.dataVolume, "data-volume", 0, "Data volume in GB")
	flags.Float64Var(&f.codeChanges, "code-changes", 0, "Code changes per month")
	flags.Float64Var(&f.envCount, "env-count", 0, "Number of environments")
	flags.Float64Var(&f.rollbacks, "rollbacks", 0, "Rollbacks per month")
	flags.Float64Var(&f.ratio, "ratio", 0, "Compute-to-storage cost ratio")
	flags.Float64Var(&f.tooling, "tooling", 0, "Tooling investment, enables ROI")
}

// resolve builds the scenario input from the preset and the flags the user set
func (f *scenarioFlags) resolve(ctx context.Context, c *client.Client, cmd *cobra.Command) (models.ScenarioInput, error) {
	var input models.ScenarioInput
	flags := cmd.Flags()

	if f.preset != "" {
		presets, err := c.Presets(ctx)
		if err != nil {
			return input, err
		}
		p, ok := findPreset(presets, f.preset)
		if !ok {
			return input, fmt.Errorf("unknown preset %q (available: %s)", f.preset, presetNames(presets))
		}
		input = p.Input
	} else {
		var missing []string
		for _, name := range requiredInputFlags {
			if !flags.Changed(name) {
				missing = append(missing, "--"+name)
			}
		}
		if len(missing) > 0 {
			return input, fmt.Errorf("missing %s (or use --preset)", strings.Join(missing, ", "))
		}
	}

	if flags.Changed("data-models") {
		input.DataModels = f.dataModels
	}
	if flags.Changed("data-volume") {
		input.DataVolume = f.dataVolume
	}
	if flags.Changed("code-changes") {
		input.CodeChanges = f.codeChanges
	}
	if flags.Changed("env-count") {
		input.EnvCount = f.envCount
	}
	if flags.Changed("rollbacks") {
		input.Rollbacks = f.rollbacks
	}
	if flags.Changed("ratio") {
		input.ComputeToStorageRatio = f.ratio
	}
	if flags.Changed("tooling") {
		input.ToolingInvestment = models.Tooling(f.tooling)
	}
	return input, nil
}

func findPreset(presets []models.Preset, name string) (models.Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return models.Preset{}, false
}

func presetNames(presets []models.Preset) string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
