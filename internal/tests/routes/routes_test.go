package routes_test

import (
	"net/http"
	"testing"

	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestRootEndpoint(t *testing.T) {
	app := tests.NewTestApp()

	resp := tests.Do(t, app, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/api/games", resp.Header.Get("Location"))
}

func TestWsRequiresUpgrade(t *testing.T) {
	app := tests.NewTestApp()

	resp := tests.Do(t, app, http.MethodGet, "/ws", nil)

	require.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestWsRequiresAuth(t *testing.T) {
	app := tests.NewTestAppWithAuth()

	resp := tests.Do(t, app, http.MethodGet, "/ws", nil)

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
