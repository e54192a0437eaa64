package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "debug",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 2 * time.Second,
		},
		Metrics: config.MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) (*application, *logger.TestLogBuffer) {
	t.Helper()
	logBuf, log := logger.NewTestLogger(t)
	app, err := newApplication(cfg, log)
	require.NoError(t, err)
	return app, logBuf
}

func TestRouter_TaskLifecycle(t *testing.T) {
	app, logBuf := newTestApp(t, testConfig())
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/tasks", "application/json", bytes.NewBufferString(`{"title":"Tarea 1"}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"id":1,"title":"Tarea 1","status":"pending"}`, string(body))
	assert.Len(t, resp.Header.Get("X-Trace-ID"), 32)

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	// Audit handler records the mutation
	logger.AssertLogContains(t, logBuf, `"event_type":"task.created"`)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t, testConfig())
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/tasks", "application/json", bytes.NewBufferString(`{"title":"a"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	text := string(body)
	assert.Contains(t, text, `tasks_api_task_events_total{type="task.created"} 1`)
	assert.Contains(t, text, "tasks_api_tasks_stored 1")
	assert.Contains(t, text, `tasks_api_http_requests_total{method="POST",route="/tasks",status="201"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	app, _ := newTestApp(t, cfg)
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_CustomMetricsPath(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Path = "/internal/metrics"
	app, _ := newTestApp(t, cfg)
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/internal/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
