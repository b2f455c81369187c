// ABOUTME: HTTP client for the VDB benchmark API
// ABOUTME: Wraps API calls with session tracking and error handling for CLI and TUI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

// SessionHeader carries the scenario table session in both directions
const SessionHeader = "X-Session-ID"

// APIError is a non-2xx response decoded from the backend error envelope
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend error: %s (%s)", e.Message, e.Details)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// IsStatus reports whether err is an APIError with the given HTTP status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client is the API client for the benchmark backend.
// It remembers the session ID the backend assigns so that table
// operations keep hitting the same scenario table.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.Mutex
	sessionID string
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the backend URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SessionID returns the current session, or "" before the first table call
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// SetSessionID resumes an existing session
func (c *Client) SetSessionID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = id
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var health models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, http.StatusOK, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Presets calls GET /api/v1/presets
func (c *Client) Presets(ctx context.Context) ([]models.Preset, error) {
	var presets []models.Preset
	if err := c.do(ctx, http.MethodGet, "/api/v1/presets", nil, http.StatusOK, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// Compute calls POST /api/v1/scenario/compute
func (c *Client) Compute(ctx context.Context, input models.ScenarioInput) (*models.ScenarioResult, error) {
	var result models.ScenarioResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/scenario/compute", input, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Table calls GET /api/v1/scenarios
func (c *Client) Table(ctx context.Context) (*models.TableState, error) {
	var table models.TableState
	if err := c.do(ctx, http.MethodGet, "/api/v1/scenarios", nil, http.StatusOK, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// Append calls POST /api/v1/scenarios
func (c *Client) Append(ctx context.Context, input models.ScenarioInput) (*models.AppendResult, error) {
	var result models.AppendResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/scenarios", input, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Remove calls DELETE /api/v1/scenarios/{index}.
// An empty table yields a result carrying a warning, not an error.
func (c *Client) Remove(ctx context.Context, index int) (*models.RemoveResult, error) {
	var result models.RemoveResult
	path := "/api/v1/scenarios/" + strconv.Itoa(index)
	if err := c.do(ctx, http.MethodDelete, path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Reset calls POST /api/v1/scenarios/reset
func (c *Client) Reset(ctx context.Context) (*models.TableState, error) {
	var table models.TableState
	if err := c.do(ctx, http.MethodPost, "/api/v1/scenarios/reset", nil, http.StatusOK, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// Summary calls GET /api/v1/scenarios/summary
func (c *Client) Summary(ctx context.Context) (*models.TableSummary, error) {
	var summary models.TableSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/scenarios/summary", nil, http.StatusOK, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Scatter calls GET /api/v1/scenarios/scatter
func (c *Client) Scatter(ctx context.Context) ([]models.ScatterPoint, error) {
	var points []models.ScatterPoint
	if err := c.do(ctx, http.MethodGet, "/api/v1/scenarios/scatter", nil, http.StatusOK, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// Breakdown calls GET /api/v1/scenarios/{index}/breakdown
func (c *Client) Breakdown(ctx context.Context, index int) (*models.CostBreakdown, error) {
	var breakdown models.CostBreakdown
	path := "/api/v1/scenarios/" + strconv.Itoa(index) + "/breakdown"
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

// do sends a JSON request and decodes a response with the expected status into out
func (c *Client) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal input: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := c.SessionID(); id != "" {
		req.Header.Set(SessionHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if id := resp.Header.Get(SessionHeader); id != "" {
		c.SetSessionID(id)
	}

	if resp.StatusCode != want {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}
	return &APIError{Status: resp.StatusCode, Message: errResp.Error, Details: errResp.Details}
}
