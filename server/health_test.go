package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getHealth(t *testing.T, app *fiber.App) HealthResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var health HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	return health
}

func TestHealthConfigured(t *testing.T) {
	_, app := testServer(t, &stubCompleter{})

	health := getHealth(t, app)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "configured", health.Services.GroqAPI)
	assert.Equal(t, "operational", health.Services.Backend)
	assert.Equal(t, "1.0.0", health.Version)

	_, err := time.Parse(time.RFC3339, health.Timestamp)
	assert.NoError(t, err)
}

func TestHealthMissingKey(t *testing.T) {
	stub := &stubCompleter{}
	_, app := testServer(t, stub, func(c *Config) { c.APIKey = "" })

	health := getHealth(t, app)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "missing_key", health.Services.GroqAPI)
	assert.Zero(t, stub.calls, "health must never contact the upstream")
}

func TestHealthMethodNotAllowed(t *testing.T) {
	_, app := testServer(t, &stubCompleter{})

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 405, resp.StatusCode)
}

func TestHealthCORSHeaders(t *testing.T) {
	_, app := testServer(t, &stubCompleter{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHealthPreflight(t *testing.T) {
	_, app := testServer(t, &stubCompleter{})

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
