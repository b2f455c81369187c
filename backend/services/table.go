// ABOUTME: Pure reducers over a session's scenario table
// ABOUTME: Initialize, append, and remove-at each return a new TableState

package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

// InitializeTable builds a fresh table with one computed row per preset, in order
func InitializeTable(presets []models.Preset) (models.TableState, error) {
	rows := make([]models.ScenarioRow, 0, len(presets))
	for _, p := range presets {
		result, err := ComputeScenario(p.Input)
		if err != nil {
			return models.TableState{}, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		rows = append(rows, models.ScenarioRow{
			ID:             uuid.NewString(),
			Name:           p.Name,
			ScenarioResult: result,
		})
	}
	return models.TableState{Rows: rows}, nil
}

// AppendScenario computes input and adds it as the last row.
// The new row becomes the headline row of the returned state.
func AppendScenario(state models.TableState, input models.ScenarioInput) (models.TableState, models.ScenarioRow, error) {
	result, err := ComputeScenario(input)
	if err != nil {
		return state, models.ScenarioRow{}, err
	}

	row := models.ScenarioRow{
		ID:             uuid.NewString(),
		ScenarioResult: result,
	}

	rows := make([]models.ScenarioRow, len(state.Rows), len(state.Rows)+1)
	copy(rows, state.Rows)
	rows = append(rows, row)

	last := row
	return models.TableState{Rows: rows, Last: &last}, row, nil
}

// RemoveScenarioAt deletes the row at index, preserving the order of the rest.
// Removing from an empty table is a no-op that reports models.EmptyTableWarning.
func RemoveScenarioAt(state models.TableState, index int) (models.TableState, models.RemoveResult, error) {
	if len(state.Rows) == 0 {
		return state, models.RemoveResult{Warning: models.EmptyTableWarning, Table: state}, nil
	}
	if index < 0 || index >= len(state.Rows) {
		return state, models.RemoveResult{}, fmt.Errorf("%w: %d not in [0, %d)", models.ErrIndexOutOfRange, index, len(state.Rows))
	}

	removed := state.Rows[index]
	rows := make([]models.ScenarioRow, 0, len(state.Rows)-1)
	rows = append(rows, state.Rows[:index]...)
	rows = append(rows, state.Rows[index+1:]...)

	next := models.TableState{Rows: rows, Last: state.Last}
	if state.Last != nil && state.Last.ID == removed.ID {
		next.Last = nil
		if len(rows) > 0 {
			last := rows[len(rows)-1]
			next.Last = &last
		}
	}

	return next, models.RemoveResult{Removed: &removed, Table: next}, nil
}
