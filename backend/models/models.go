// ABOUTME: Shared API models, sentinel errors, and response envelopes
// ABOUTME: JSON-serializable structures consumed by the CLI and TUI

package models

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInput marks an input that would divide by zero in the cost model
	ErrInvalidInput = errors.New("invalid input")
	// ErrIndexOutOfRange marks a row index outside the scenario table
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrSessionNotFound marks an unknown or expired session
	ErrSessionNotFound = errors.New("session not found")
)

// EmptyTableWarning is returned when removing from a table with no rows
const EmptyTableWarning = "No more entries to remove."

// Preset is a named set of scenario inputs used to seed new tables
type Preset struct {
	Name  string        `json:"name" yaml:"name"`
	Input ScenarioInput `json:"input" yaml:"input"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status         string    `json:"status"`
	ActiveSessions int       `json:"active_sessions"`
	PresetCount    int       `json:"preset_count"`
	Timestamp      time.Time `json:"timestamp"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
