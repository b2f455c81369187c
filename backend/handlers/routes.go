// ABOUTME: Declarative route table and router assembly for API endpoints
// ABOUTME: Applies logging, CORS, metrics, session, and rate limit middleware per route

package handlers

import (
	"net/http"
	"time"

	"github.com/chrisspier/vdb-benchmark-app/backend/middleware"
	"github.com/chrisspier/vdb-benchmark-app/backend/services"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
	Session bool             // Binds the request to a scenario table session
	Write   bool             // Mutates state; uses the stricter rate limit
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & catalogue
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/api/v1/presets", Handler: h.ListPresets},
		{Method: http.MethodPost, Path: "/api/v1/scenario/compute", Handler: h.ComputeScenario},

		// Scenario table
		{Method: http.MethodGet, Path: "/api/v1/scenarios", Handler: h.GetTable, Session: true},
		{Method: http.MethodPost, Path: "/api/v1/scenarios", Handler: h.AppendScenario, Session: true, Write: true},
		{Method: http.MethodDelete, Path: "/api/v1/scenarios/{index}", Handler: h.RemoveScenario, Session: true, Write: true},
		{Method: http.MethodPost, Path: "/api/v1/scenarios/reset", Handler: h.ResetTable, Session: true, Write: true},

		// Charts
		{Method: http.MethodGet, Path: "/api/v1/scenarios/summary", Handler: h.GetSummary, Session: true},
		{Method: http.MethodGet, Path: "/api/v1/scenarios/scatter", Handler: h.GetScatter, Session: true},
		{Method: http.MethodGet, Path: "/api/v1/scenarios/{index}/breakdown", Handler: h.GetBreakdown, Session: true},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}

// NewRouter registers every route with its middleware chain.
// /metrics is exposed when metrics are enabled in the configuration.
func (h *Handler) NewRouter() *http.ServeMux {
	mux := http.NewServeMux()

	var writeLimiter, defaultLimiter *middleware.RateLimiter
	var allowedOrigins []string
	sessionOpts := middleware.SessionOptions{TTL: time.Hour}
	metricsEnabled := true
	if h.cfg != nil {
		if h.cfg.RateLimitEnabled {
			writeLimiter = middleware.NewRateLimiter(h.cfg.RateLimitWrite, time.Minute)
			defaultLimiter = middleware.NewRateLimiter(h.cfg.RateLimitDefault, time.Minute)
		}
		allowedOrigins = h.cfg.CORSAllowedOrigins
		sessionOpts = middleware.SessionOptions{CookieSecure: h.cfg.CookieSecure, TTL: h.cfg.SessionTTLDuration()}
		metricsEnabled = h.cfg.MetricsEnabled
	}
	cors := middleware.CORS(allowedOrigins)
	session := middleware.Session(h.sessions, services.ValidateSessionID, sessionOpts)

	preflight := make(map[string]bool)
	for _, route := range h.Routes() {
		limiter, key := defaultLimiter, middleware.ClientIP
		if route.Write {
			limiter, key = writeLimiter, middleware.SessionKey
		}

		chain := []middleware.Middleware{
			middleware.LogRequest,
			h.metrics.Instrument,
			cors,
			middleware.RateLimit(limiter, key),
		}
		if route.Session {
			chain = append(chain, session)
		}

		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler, chain...))
		if !preflight[route.Path] {
			preflight[route.Path] = true
			mux.HandleFunc(http.MethodOptions+" "+route.Path, middleware.Chain(route.Handler, middleware.LogRequest, cors))
		}
	}

	if metricsEnabled {
		mux.Handle("GET /metrics", h.metrics.Handler())
	}
	return mux
}
