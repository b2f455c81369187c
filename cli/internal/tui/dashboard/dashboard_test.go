// ABOUTME: Tests for the summary pane
// ABOUTME: Validates headline metrics and the last-added scenario section

package dashboard

import (
	"strings"
	"testing"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

func sampleRows() []models.ScenarioRow {
	rows := make([]models.ScenarioRow, 3)
	for i, pct := range []float64{20, 41.52, 35} {
		rows[i].SavingsPercent = pct
	}
	return rows
}

func TestDashboardView(t *testing.T) {
	roi := 52.8
	summary := &models.TableSummary{
		RowCount:              3,
		AverageSavingsPercent: 32.17,
		HasLast:               true,
		ToolingInvestment:     models.Tooling(5),
		SavingsAmount:         7.64,
		ReturnOnInvestment:    &roi,
	}

	d := New(summary, sampleRows(), 40, 40)
	view := d.View()

	for _, expected := range []string{
		"Scenarios",
		"32.17%",
		"Savings by row",
		"$7.64",
		"$5.00",
		"ROI 52.80%",
	} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q\nView:\n%s", expected, view)
		}
	}
}

func TestDashboardNilSummary(t *testing.T) {
	d := New(nil, nil, 40, 24)

	if !strings.Contains(d.View(), "Loading") {
		t.Error("expected loading message when summary is nil")
	}
}

func TestDashboardNoLastRow(t *testing.T) {
	d := New(&models.TableSummary{}, nil, 40, 24)
	view := d.View()

	if !strings.Contains(view, "Add a scenario") {
		t.Errorf("expected hint without a last row\nView:\n%s", view)
	}
	if strings.Contains(view, "Savings by row") {
		t.Error("sparkline should be hidden for an empty table")
	}
}

func TestDashboardNoTooling(t *testing.T) {
	summary := &models.TableSummary{RowCount: 1, HasLast: true, SavingsAmount: 7.91}

	d := New(summary, sampleRows()[:1], 40, 40)
	view := d.View()

	if !strings.Contains(view, "ROI n/a") {
		t.Errorf("expected n/a ROI without tooling\nView:\n%s", view)
	}
	if strings.Contains(view, "Tooling") {
		t.Error("tooling line should be hidden without an investment")
	}
}

func TestDashboardUpdate(t *testing.T) {
	d := New(nil, nil, 40, 40)

	d.Update(&models.TableSummary{RowCount: 2}, sampleRows()[:2])

	view := d.View()
	if strings.Contains(view, "Loading") {
		t.Error("should not show loading after update")
	}
	if len(d.savings) != 2 {
		t.Errorf("expected 2 savings values, got %d", len(d.savings))
	}
}
