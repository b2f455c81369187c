// ABOUTME: Chart data and headline figures derived from a scenario table
// ABOUTME: Feeds the savings scatter plot, the cost breakdown bars, and the summary

package services

import (
	"fmt"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

// SavingsScatter returns one point per row, keyed by code changes and environments
func SavingsScatter(state models.TableState) []models.ScatterPoint {
	points := make([]models.ScatterPoint, len(state.Rows))
	for i, row := range state.Rows {
		points[i] = models.ScatterPoint{
			Index:          i,
			CodeChanges:    row.CodeChanges,
			EnvCount:       row.EnvCount,
			SavingsPercent: row.SavingsPercent,
		}
	}
	return points
}

// CostBreakdown returns baseline and optimized compute/storage bars for the row at index
func CostBreakdown(state models.TableState, index int) (models.CostBreakdown, error) {
	if index < 0 || index >= len(state.Rows) {
		return models.CostBreakdown{}, fmt.Errorf("%w: %d not in [0, %d)", models.ErrIndexOutOfRange, index, len(state.Rows))
	}

	row := state.Rows[index]
	return models.CostBreakdown{
		Index:         index,
		Configuration: row.Description(),
		Bars: []models.CostBar{
			{Label: "VDB Disabled", Compute: row.ComputeCostBaseline, Storage: row.StorageCostBaseline},
			{Label: "VDB Enabled", Compute: row.ComputeCostOptimized, Storage: row.StorageCostOptimized},
		},
	}, nil
}

// Summarize returns the headline figures of the table.
// Tooling investment, savings amount, and ROI come from the most recently appended row.
func Summarize(state models.TableState) models.TableSummary {
	summary := models.TableSummary{RowCount: len(state.Rows)}

	if len(state.Rows) > 0 {
		var total float64
		for _, row := range state.Rows {
			total += row.SavingsPercent
		}
		summary.AverageSavingsPercent = round2(total / float64(len(state.Rows)))
	}

	if state.Last != nil {
		summary.HasLast = true
		summary.ToolingInvestment = state.Last.ToolingInvestment
		summary.SavingsAmount = state.Last.SavingsAmount
		summary.ReturnOnInvestment = state.Last.ReturnOnInvestment
	}

	return summary
}
