// ABOUTME: Chart and headline models derived from a scenario table
// ABOUTME: Scatter points, cost breakdown bars, and summary metrics

package models

// ScatterPoint is one row plotted by code changes against environments
type ScatterPoint struct {
	Index          int     `json:"index"`
	CodeChanges    float64 `json:"code_changes"`
	EnvCount       float64 `json:"env_count"`
	SavingsPercent float64 `json:"savings_percent"`
}

// CostBar is one stacked bar of the breakdown chart
type CostBar struct {
	Label   string  `json:"label"`
	Compute float64 `json:"compute"`
	Storage float64 `json:"storage"`
}

// Total returns compute plus storage
func (b CostBar) Total() float64 {
	return b.Compute + b.Storage
}

// CostBreakdown compares baseline and optimized costs of a single row
type CostBreakdown struct {
	Index         int       `json:"index"`
	Configuration string    `json:"configuration"`
	Bars          []CostBar `json:"bars"`
}

// TableSummary holds the headline figures shown above the table
type TableSummary struct {
	RowCount              int      `json:"row_count"`
	AverageSavingsPercent float64  `json:"average_savings_percent"`
	HasLast               bool     `json:"has_last"`
	ToolingInvestment     *float64 `json:"tooling_investment,omitempty"`
	SavingsAmount         float64  `json:"savings_amount"`
	ReturnOnInvestment    *float64 `json:"return_on_investment,omitempty"`
}
