package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCompute(t *testing.T) {
	m := New()

	m.ObserveCompute(nil)
	m.ObserveCompute(nil)
	m.ObserveCompute(errors.New("invalid input"))

	if got := testutil.ToFloat64(m.computed.WithLabelValues(OutcomeOK)); got != 2 {
		t.Errorf("Expected 2 ok computations, got %v", got)
	}
	if got := testutil.ToFloat64(m.computed.WithLabelValues(OutcomeInvalid)); got != 1 {
		t.Errorf("Expected 1 invalid computation, got %v", got)
	}
}

func TestObserveMutation(t *testing.T) {
	m := New()

	m.ObserveMutation(OpAppend)
	m.ObserveMutation(OpRemove)
	m.ObserveMutation(OpAppend)

	if got := testutil.ToFloat64(m.mutations.WithLabelValues(OpAppend)); got != 2 {
		t.Errorf("Expected 2 appends, got %v", got)
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.ObserveMutation(OpReset)
	if got := testutil.ToFloat64(b.mutations.WithLabelValues(OpReset)); got != 0 {
		t.Errorf("Expected registries to be independent, got %v", got)
	}
}

func TestHandler_ExposesSessionGauge(t *testing.T) {
	m := New()
	m.RegisterSessionGauge(func() int { return 3 })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "vdb_benchmark_active_sessions 3") {
		t.Errorf("Expected session gauge in exposition, got:\n%s", body)
	}
}

func TestInstrument_RecordsStatusAndPattern(t *testing.T) {
	m := New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/scenarios/{index}/breakdown", m.Instrument(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scenarios/9/breakdown", nil))

	got := testutil.ToFloat64(m.requests.WithLabelValues("404", http.MethodGet, "GET /api/v1/scenarios/{index}/breakdown"))
	if got != 1 {
		t.Errorf("Expected one request recorded under the route pattern, got %v", got)
	}
}
