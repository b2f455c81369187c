// ABOUTME: VDB cost model computing baseline vs optimized storage and compute costs
// ABOUTME: Every intermediate figure is rounded to cents before it feeds the next step

package services

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

const (
	// StorageCostPerTB is the monthly storage price in dollars per terabyte
	StorageCostPerTB = 23
	// GBToTB converts gigabytes to terabytes
	GBToTB = 0.001
)

// ComputeScenario derives the cost profile of a single scenario.
// It returns an error wrapping models.ErrInvalidInput when a formula denominator is zero
// or when finite inputs overflow an intermediate figure.
func ComputeScenario(input models.ScenarioInput) (models.ScenarioResult, error) {
	if err := validateScenarioInput(input); err != nil {
		return models.ScenarioResult{}, err
	}

	var r rounder
	storageBaseline := r.round("storage_cost_baseline", input.DataVolume*GBToTB*StorageCostPerTB)
	computeBaseline := r.round("compute_cost_baseline", storageBaseline*input.ComputeToStorageRatio)
	totalBaseline := r.round("total_cost_baseline", storageBaseline+computeBaseline)
	if r.err != nil {
		return models.ScenarioResult{}, r.err
	}
	if totalBaseline == 0 {
		return models.ScenarioResult{}, fmt.Errorf("%w: total baseline cost is zero", models.ErrInvalidInput)
	}

	// Each code change materializes one extra per-model slice of the volume
	perModelGB := input.DataVolume / input.DataModels
	storageOptimized := r.round("storage_cost_optimized",
		(input.DataVolume+perModelGB*input.CodeChanges)*GBToTB*StorageCostPerTB)

	// Only code changes are rebuilt; rollbacks and the other environments reuse builds
	computeUnits := r.round("compute_units", input.CodeChanges)
	unitPrice := r.round("unit_price", (storageBaseline*input.ComputeToStorageRatio)/
		((input.CodeChanges+input.Rollbacks)*input.EnvCount))
	computeOptimized := r.round("compute_cost_optimized", computeUnits*unitPrice)
	totalOptimized := r.round("total_cost_optimized", storageOptimized+computeOptimized)

	savingsPercent := math.Max(0, r.round("savings_percent", (totalBaseline-totalOptimized)/totalBaseline*100))
	savingsAmount := r.round("savings_amount", totalBaseline-totalOptimized)

	var roi *float64
	if input.ToolingInvestment != nil {
		tooling := *input.ToolingInvestment
		v := r.round("return_on_investment", (savingsAmount-tooling)/tooling*100)
		roi = &v
	}
	if r.err != nil {
		return models.ScenarioResult{}, r.err
	}

	return models.ScenarioResult{
		ScenarioInput:        input,
		StorageCostBaseline:  storageBaseline,
		StorageCostOptimized: storageOptimized,
		ComputeCostBaseline:  computeBaseline,
		ComputeCostOptimized: computeOptimized,
		TotalCostBaseline:    totalBaseline,
		TotalCostOptimized:   totalOptimized,
		SavingsPercent:       savingsPercent,
		SavingsAmount:        savingsAmount,
		ReturnOnInvestment:   roi,
	}, nil
}

// validateScenarioInput rejects inputs that would make a formula divide by zero
func validateScenarioInput(input models.ScenarioInput) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"data_models", input.DataModels},
		{"data_volume", input.DataVolume},
		{"code_changes", input.CodeChanges},
		{"env_count", input.EnvCount},
		{"rollbacks", input.Rollbacks},
		{"compute_to_storage_ratio", input.ComputeToStorageRatio},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", models.ErrInvalidInput, f.name)
		}
	}

	if input.DataModels == 0 {
		return fmt.Errorf("%w: data_models must not be zero", models.ErrInvalidInput)
	}
	if input.CodeChanges+input.Rollbacks == 0 {
		return fmt.Errorf("%w: code_changes plus rollbacks must not be zero", models.ErrInvalidInput)
	}
	if input.EnvCount == 0 {
		return fmt.Errorf("%w: env_count must not be zero", models.ErrInvalidInput)
	}
	if input.ToolingInvestment != nil {
		tooling := *input.ToolingInvestment
		if math.IsNaN(tooling) || math.IsInf(tooling, 0) {
			return fmt.Errorf("%w: tooling_investment must be a finite number", models.ErrInvalidInput)
		}
		if tooling == 0 {
			return fmt.Errorf("%w: tooling_investment must not be zero", models.ErrInvalidInput)
		}
	}
	return nil
}

// rounder applies round2 to each named step and keeps the first overflow it sees.
// Once err is set every later step returns zero.
type rounder struct {
	err error
}

func (r *rounder) round(name string, v float64) float64 {
	if r.err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		r.err = fmt.Errorf("%w: %s overflows", models.ErrInvalidInput, name)
		return 0
	}
	return round2(v)
}

// round2 rounds to two decimal places, half away from zero.
// v must be finite; decimal.NewFromFloat panics on NaN and Inf.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
