package services

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeScenario_SmallPreset(t *testing.T) {
	input := models.ScenarioInput{
		DataModels:            200,
		DataVolume:            100,
		CodeChanges:           40,
		EnvCount:              2,
		Rollbacks:             1,
		ComputeToStorageRatio: 7,
	}

	result, err := ComputeScenario(input)
	if err != nil {
		t.Fatalf("ComputeScenario failed: %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"storage baseline", result.StorageCostBaseline, 2.3},
		{"compute baseline", result.ComputeCostBaseline, 16.1},
		{"total baseline", result.TotalCostBaseline, 18.4},
		// (100 + 100/200*40) * 0.023 = 120 * 0.023
		{"storage optimized", result.StorageCostOptimized, 2.76},
		// 40 units * round2(16.1 / (41*2)) = 40 * 0.20
		{"compute optimized", result.ComputeCostOptimized, 8.0},
		{"total optimized", result.TotalCostOptimized, 10.76},
		{"savings percent", result.SavingsPercent, 41.52},
		{"savings amount", result.SavingsAmount, 7.64},
	}
	for _, tt := range tests {
		if !approxEqual(tt.got, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, tt.got)
		}
	}

	if result.ReturnOnInvestment != nil {
		t.Errorf("Expected no ROI without tooling investment, got %v", *result.ReturnOnInvestment)
	}
	if result.DataModels != 200 || result.ComputeToStorageRatio != 7 {
		t.Errorf("Expected inputs echoed in result, got %+v", result.ScenarioInput)
	}
}

func TestComputeScenario_ROIIsFinite(t *testing.T) {
	input := models.ScenarioInput{
		DataModels:            50,
		DataVolume:            100,
		CodeChanges:           15,
		EnvCount:              2,
		Rollbacks:             1,
		ComputeToStorageRatio: 7,
		ToolingInvestment:     models.Tooling(10),
	}

	result, err := ComputeScenario(input)
	if err != nil {
		t.Fatalf("ComputeScenario failed: %v", err)
	}

	if result.ReturnOnInvestment == nil {
		t.Fatal("Expected ROI when tooling investment is present")
	}
	roi := *result.ReturnOnInvestment
	if math.IsNaN(roi) || math.IsInf(roi, 0) {
		t.Fatalf("Expected finite ROI, got %v", roi)
	}

	// total optimized = 2.99 + 15*0.50 = 10.49, savings = 18.4 - 10.49 = 7.91
	if !approxEqual(result.SavingsAmount, 7.91) {
		t.Errorf("Expected savings amount 7.91, got %v", result.SavingsAmount)
	}
	// (7.91 - 10) / 10 * 100
	if !approxEqual(roi, -20.9) {
		t.Errorf("Expected ROI -20.9, got %v", roi)
	}
}

func TestComputeScenario_SavingsPercentClamped(t *testing.T) {
	// One data model with many changes copies the whole volume per change
	input := models.ScenarioInput{
		DataModels:            1,
		DataVolume:            100,
		CodeChanges:           100,
		EnvCount:              1,
		Rollbacks:             0,
		ComputeToStorageRatio: 0.1,
	}

	result, err := ComputeScenario(input)
	if err != nil {
		t.Fatalf("ComputeScenario failed: %v", err)
	}

	if result.SavingsPercent != 0 {
		t.Errorf("Expected savings percent clamped to 0, got %v", result.SavingsPercent)
	}
	if result.SavingsAmount >= 0 {
		t.Errorf("Expected negative savings amount, got %v", result.SavingsAmount)
	}
}

func TestComputeScenario_Deterministic(t *testing.T) {
	input := models.ScenarioInput{
		DataModels: 1000, DataVolume: 10000, CodeChanges: 300, EnvCount: 3, Rollbacks: 3,
		ComputeToStorageRatio: 7, ToolingInvestment: models.Tooling(100),
	}

	first, err := ComputeScenario(input)
	if err != nil {
		t.Fatalf("ComputeScenario failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := ComputeScenario(input)
		if err != nil {
			t.Fatalf("ComputeScenario failed: %v", err)
		}
		if next.TotalCostOptimized != first.TotalCostOptimized || *next.ReturnOnInvestment != *first.ReturnOnInvestment {
			t.Fatalf("Expected identical results, got %+v and %+v", first, next)
		}
	}
}

func TestComputeScenario_InvalidInput(t *testing.T) {
	valid := models.ScenarioInput{
		DataModels: 200, DataVolume: 100, CodeChanges: 40, EnvCount: 2, Rollbacks: 1, ComputeToStorageRatio: 7,
	}

	tests := []struct {
		name    string
		mutate  func(*models.ScenarioInput)
		wantMsg string
	}{
		{"zero data models", func(in *models.ScenarioInput) { in.DataModels = 0 }, "data_models"},
		{"zero changes and rollbacks", func(in *models.ScenarioInput) { in.CodeChanges = 0; in.Rollbacks = 0 }, "code_changes plus rollbacks"},
		{"zero environments", func(in *models.ScenarioInput) { in.EnvCount = 0 }, "env_count"},
		{"zero volume", func(in *models.ScenarioInput) { in.DataVolume = 0 }, "total baseline"},
		{"zero tooling", func(in *models.ScenarioInput) { in.ToolingInvestment = models.Tooling(0) }, "tooling_investment"},
		{"NaN ratio", func(in *models.ScenarioInput) { in.ComputeToStorageRatio = math.NaN() }, "compute_to_storage_ratio"},
		{"infinite volume", func(in *models.ScenarioInput) { in.DataVolume = math.Inf(1) }, "data_volume"},
		{"baseline overflow", func(in *models.ScenarioInput) {
			*in = models.ScenarioInput{DataModels: 1, DataVolume: 1e308, CodeChanges: 1, EnvCount: 1, ComputeToStorageRatio: 1e10}
		}, "compute_cost_baseline overflows"},
		{"per-model volume overflow", func(in *models.ScenarioInput) {
			*in = models.ScenarioInput{DataModels: 1e-320, DataVolume: 100, CodeChanges: 1, EnvCount: 1, ComputeToStorageRatio: 7}
		}, "storage_cost_optimized overflows"},
		{"return on investment overflow", func(in *models.ScenarioInput) { in.ToolingInvestment = models.Tooling(1e-320) }, "return_on_investment overflows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := ComputeScenario(input)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected error to mention %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestComputeScenario_ZeroCodeChangesWithRollbacks(t *testing.T) {
	input := models.ScenarioInput{
		DataModels: 10, DataVolume: 1000, CodeChanges: 0, EnvCount: 3, Rollbacks: 4, ComputeToStorageRatio: 5,
	}

	result, err := ComputeScenario(input)
	if err != nil {
		t.Fatalf("ComputeScenario failed: %v", err)
	}
	if result.ComputeCostOptimized != 0 {
		t.Errorf("Expected no optimized compute without code changes, got %v", result.ComputeCostOptimized)
	}
	if !approxEqual(result.StorageCostOptimized, result.StorageCostBaseline) {
		t.Errorf("Expected optimized storage %v to equal baseline %v", result.StorageCostOptimized, result.StorageCostBaseline)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.3000000000000003, 2.3},
		{0.19634, 0.2},
		{0.125, 0.13},
		{-0.125, -0.13},
		{41.521739, 41.52},
	}
	for _, tt := range tests {
		if got := round2(tt.in); !approxEqual(got, tt.want) {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
