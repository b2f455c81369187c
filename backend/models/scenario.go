// ABOUTME: Data models for VDB cost scenarios and the per-session scenario table
// ABOUTME: Inputs are business parameters; results carry baseline and optimized costs

package models

import "fmt"

// ScenarioInput holds the business parameters of one cost scenario
type ScenarioInput struct {
	DataModels            float64  `json:"data_models" yaml:"data_models"`
	DataVolume            float64  `json:"data_volume" yaml:"data_volume"` // GB
	CodeChanges           float64  `json:"code_changes" yaml:"code_changes"`
	EnvCount              float64  `json:"env_count" yaml:"env_count"`
	Rollbacks             float64  `json:"rollbacks" yaml:"rollbacks"`
	ComputeToStorageRatio float64  `json:"compute_to_storage_ratio" yaml:"compute_to_storage_ratio"`
	ToolingInvestment     *float64 `json:"tooling_investment,omitempty" yaml:"tooling_investment,omitempty"`
}

// Tooling returns a pointer to v, for building inputs with a tooling investment
func Tooling(v float64) *float64 {
	return &v
}

// ScenarioResult is the computed cost profile of a scenario, rounded to cents
type ScenarioResult struct {
	ScenarioInput

	StorageCostBaseline  float64  `json:"storage_cost_baseline"`
	StorageCostOptimized float64  `json:"storage_cost_optimized"`
	ComputeCostBaseline  float64  `json:"compute_cost_baseline"`
	ComputeCostOptimized float64  `json:"compute_cost_optimized"`
	TotalCostBaseline    float64  `json:"total_cost_baseline"`
	TotalCostOptimized   float64  `json:"total_cost_optimized"`
	SavingsPercent       float64  `json:"savings_percent"`
	SavingsAmount        float64  `json:"savings_amount"`
	ReturnOnInvestment   *float64 `json:"return_on_investment,omitempty"`
}

// Description summarizes the scenario configuration in one line
func (r *ScenarioResult) Description() string {
	return fmt.Sprintf("%g data models, %g GB, %g code changes, %g environments, %g rollbacks, ratio %g",
		r.DataModels, r.DataVolume, r.CodeChanges, r.EnvCount, r.Rollbacks, r.ComputeToStorageRatio)
}

// ScenarioRow is a table entry: a computed result with a stable identity
type ScenarioRow struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"` // preset name; empty for user-added rows
	ScenarioResult
}

// TableState is the scenario table of one session.
// Rows keep insertion order; Last is the most recently appended row.
type TableState struct {
	Rows []ScenarioRow `json:"rows"`
	Last *ScenarioRow  `json:"last,omitempty"`
}

// Len returns the number of rows
func (s TableState) Len() int {
	return len(s.Rows)
}

// RemoveResult reports the outcome of a remove-at operation
type RemoveResult struct {
	Removed *ScenarioRow `json:"removed,omitempty"`
	Warning string       `json:"warning,omitempty"`
	Table   TableState   `json:"table"`
}

// AppendResult reports the outcome of an append operation
type AppendResult struct {
	Row   ScenarioRow `json:"row"`
	Table TableState  `json:"table"`
}
