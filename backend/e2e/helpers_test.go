// ABOUTME: Test helpers for e2e tests
// ABOUTME: Builds a fully wired API server from environment configuration

package e2e

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisspier/vdb-benchmark-app/backend/cache"
	"github.com/chrisspier/vdb-benchmark-app/backend/config"
	"github.com/chrisspier/vdb-benchmark-app/backend/handlers"
	"github.com/chrisspier/vdb-benchmark-app/backend/metrics"
	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/backend/services"
)

// withTestEnv sets vars for the duration of a test, restoring originals on cleanup.
// ENV_FILE always points at a missing file so a developer .env cannot leak in.
func withTestEnv(t *testing.T, extra map[string]string) {
	t.Helper()

	vars := map[string]string{
		"ENV_FILE":           filepath.Join(t.TempDir(), "missing.env"),
		"RATE_LIMIT_ENABLED": "false",
	}
	for key, value := range extra {
		vars[key] = value
	}

	for key, value := range vars {
		original, had := os.LookupEnv(key)
		os.Setenv(key, value)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

// newServer wires the API the same way the backend binary does
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}

	presets, err := services.LoadPresets(cfg.PresetsFile)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}

	c := cache.New[models.TableState](cfg.SessionTTLDuration())
	t.Cleanup(c.Close)

	catalog := services.NewPresetCatalog(presets)
	sessions := services.NewSessionService(c, catalog)
	m := metrics.New()
	m.RegisterSessionGauge(sessions.Count)

	server := httptest.NewServer(handlers.NewHandler(cfg, sessions, catalog, m).NewRouter())
	t.Cleanup(server.Close)
	return server
}
