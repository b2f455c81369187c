// ABOUTME: Prometheus collectors for scenario computation, table edits, and HTTP traffic
// ABOUTME: Collectors live on their own registry so handlers and tests never share global state

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "vdb_benchmark"

	// Labels
	outcomeLabel   = "outcome"
	operationLabel = "operation"
)

// Outcomes of a scenario computation
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

// Table operations
const (
	OpAppend = "append"
	OpRemove = "remove"
	OpReset  = "reset"
	OpEmpty  = "remove_empty"
)

var latencyBuckets = []float64{1, 5, 10, 50, 100, 500}

// Metrics holds the service's collectors and the registry they are registered on
type Metrics struct {
	registry  *prometheus.Registry
	computed  *prometheus.CounterVec
	mutations *prometheus.CounterVec
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

// New creates and registers the collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		computed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenarios_computed_total",
			Help:      "Number of cost scenarios computed, partitioned by outcome.",
		}, []string{outcomeLabel}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "table_mutations_total",
			Help:      "Number of scenario table edits, partitioned by operation.",
		}, []string{operationLabel}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests partitioned by status code, method and route.",
		}, []string{"code", "method", "path"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_milliseconds",
			Help:      "Time spent on the request partitioned by status code, method and route.",
			Buckets:   latencyBuckets,
		}, []string{"code", "method", "path"}),
	}

	m.registry.MustRegister(
		m.computed,
		m.mutations,
		m.requests,
		m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RegisterSessionGauge exposes the live session count reported by count
func (m *Metrics) RegisterSessionGauge(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Number of sessions holding a scenario table.",
	}, func() float64 { return float64(count()) }))
}

// ObserveCompute counts one scenario computation
func (m *Metrics) ObserveCompute(err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeInvalid
	}
	m.computed.WithLabelValues(outcome).Inc()
}

// ObserveMutation counts one table edit
func (m *Metrics) ObserveMutation(op string) {
	m.mutations.WithLabelValues(op).Inc()
}

// Registry returns the registry, for gathering in tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument records request count and latency, labelled by the matched route pattern
func (m *Metrics) Instrument(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		code := strconv.Itoa(rec.status)
		m.requests.WithLabelValues(code, r.Method, path).Inc()
		m.latency.WithLabelValues(code, r.Method, path).Observe(float64(time.Since(start).Milliseconds()))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
