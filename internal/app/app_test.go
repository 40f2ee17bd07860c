package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafecast/internal/config"
	"cafecast/internal/files"
	"cafecast/internal/infrastructure"
	"cafecast/internal/services"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths = config.PathsConfig{
		DataDir:     dir,
		UploadsDir:  filepath.Join(dir, "uploads"),
		SummaryFile: filepath.Join(dir, "summary_insight.json"),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := infrastructure.NewMetrics()
	fileManager := files.NewManager(cfg.Paths)

	app := &Application{
		Config:          &cfg,
		Logger:          logger,
		Metrics:         metrics,
		ForecastService: services.NewForecastService(&cfg, logger, metrics, fileManager),
		HealthService:   services.NewHealthService(&cfg, logger),
		Files:           fileManager,
	}
	app.setupRouter()
	app.createServer()
	return app
}

func TestRouterHealthz(t *testing.T) {
	app := newTestApplication(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterVersion(t *testing.T) {
	app := newTestApplication(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version"`)
}

func TestRouterMetrics(t *testing.T) {
	app := newTestApplication(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cafecast_rows_ingested_total")
}

func TestRouterSummaryNotFound(t *testing.T) {
	app := newTestApplication(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestRouterSecurityHeaders(t *testing.T) {
	app := newTestApplication(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
