package services

import (
	"errors"
	"testing"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

func TestSavingsScatter(t *testing.T) {
	state, _ := InitializeTable(DefaultPresets())

	points := SavingsScatter(state)
	if len(points) != 6 {
		t.Fatalf("Expected 6 points, got %d", len(points))
	}
	for i, p := range points {
		if p.Index != i {
			t.Errorf("Point %d: expected index %d, got %d", i, i, p.Index)
		}
		if p.CodeChanges != state.Rows[i].CodeChanges || p.EnvCount != state.Rows[i].EnvCount {
			t.Errorf("Point %d: coordinates do not match row", i)
		}
		if p.SavingsPercent < 0 {
			t.Errorf("Point %d: negative savings %v", i, p.SavingsPercent)
		}
	}

	if got := SavingsScatter(models.TableState{}); len(got) != 0 {
		t.Errorf("Expected no points for empty table, got %d", len(got))
	}
}

func TestCostBreakdown(t *testing.T) {
	var state models.TableState
	state, _, err := AppendScenario(state, smallInput())
	if err != nil {
		t.Fatalf("AppendScenario failed: %v", err)
	}

	b, err := CostBreakdown(state, 0)
	if err != nil {
		t.Fatalf("CostBreakdown failed: %v", err)
	}
	if len(b.Bars) != 2 {
		t.Fatalf("Expected 2 bars, got %d", len(b.Bars))
	}
	if b.Bars[0].Label != "VDB Disabled" || !approxEqual(b.Bars[0].Total(), 18.4) {
		t.Errorf("Unexpected baseline bar: %+v", b.Bars[0])
	}
	if b.Bars[1].Label != "VDB Enabled" || !approxEqual(b.Bars[1].Total(), 10.76) {
		t.Errorf("Unexpected optimized bar: %+v", b.Bars[1])
	}
	if b.Configuration == "" {
		t.Error("Expected a configuration description")
	}

	if _, err := CostBreakdown(state, 1); !errors.Is(err, models.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	state, _ := InitializeTable(DefaultPresets())

	before := Summarize(state)
	if before.HasLast {
		t.Error("Expected no headline before any append")
	}
	if before.RowCount != 6 {
		t.Errorf("Expected 6 rows, got %d", before.RowCount)
	}
	if before.AverageSavingsPercent <= 0 {
		t.Errorf("Expected positive average savings, got %v", before.AverageSavingsPercent)
	}

	in := smallInput()
	in.ToolingInvestment = models.Tooling(5)
	state, _, _ = AppendScenario(state, in)

	after := Summarize(state)
	if !after.HasLast {
		t.Fatal("Expected headline after append")
	}
	if !approxEqual(after.SavingsAmount, 7.64) {
		t.Errorf("Expected savings amount 7.64, got %v", after.SavingsAmount)
	}
	if after.ToolingInvestment == nil || *after.ToolingInvestment != 5 {
		t.Errorf("Expected tooling investment 5, got %v", after.ToolingInvestment)
	}
	// (7.64 - 5) / 5 * 100
	if after.ReturnOnInvestment == nil || !approxEqual(*after.ReturnOnInvestment, 52.8) {
		t.Errorf("Expected ROI 52.8, got %v", after.ReturnOnInvestment)
	}
}
