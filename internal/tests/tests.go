// Package tests contains helpers shared by the route tests.
package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

const (
	TestUsername = "player"
	TestPassword = "secret"
	TestSeed     = 16
)

// NewTestConfig returns a config that doesn't depend on the environment.
func NewTestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost: "127.0.0.1",
		ServerPort: "0",
		Seed:       TestSeed,
		SessionTTL: time.Minute,
	}
}

// NewTestApp creates an app without basic auth.
func NewTestApp() *fiber.App {
	cfg := NewTestConfig()
	return internal.NewApp(cfg, services.InitServices(cfg))
}

// NewTestAppWithAuth creates an app that requires TestUsername and TestPassword.
func NewTestAppWithAuth() *fiber.App {
	cfg := NewTestConfig()
	cfg.BasicAuthUsername = TestUsername
	cfg.BasicAuthPassword = TestPassword
	return internal.NewApp(cfg, services.InitServices(cfg))
}

// Do sends a request with an optional JSON body to app.
func Do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		var buffer bytes.Buffer
		require.NoError(t, json.NewEncoder(&buffer).Encode(body))
		reader = &buffer
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

// Decode reads a JSON response body into v.
func Decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
