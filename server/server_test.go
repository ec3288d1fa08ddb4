package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"monopoly/config"
	"monopoly/simulator"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	sim := simulator.New(simulator.WithSeed(1), simulator.WithWorkers(2))
	return New(sim, config.Settings{RateLimitEnabled: false})
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/", "/health"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		require.Equal(t, "healthy", body["status"])
	}
}

func TestSimulate(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/game/simulate", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Winner  *string `json:"winner"`
		Rounds  int     `json:"rounds"`
		Timeout bool    `json:"timeout"`
		Players []struct {
			Strategy string `json:"strategy"`
		} `json:"players"`
	}
	decodeBody(t, resp, &body)

	require.GreaterOrEqual(t, body.Rounds, 1)
	require.Len(t, body.Players, 4)
	if body.Winner != nil {
		require.NotEmpty(t, *body.Winner)
	}
}

func TestStats(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/game/stats", strings.NewReader(`{"num_simulations": 5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		TotalSimulations   int `json:"total_simulations"`
		Draws              int `json:"draws"`
		StrategyStatistics []struct {
			Strategy string `json:"strategy"`
			Wins     int    `json:"wins"`
		} `json:"strategy_statistics"`
	}
	decodeBody(t, resp, &body)

	require.Equal(t, 5, body.TotalSimulations)
	require.Len(t, body.StrategyStatistics, 4)

	totalWins := 0
	for _, s := range body.StrategyStatistics {
		totalWins += s.Wins
	}
	require.Equal(t, 5, totalWins+body.Draws)
}

func TestStatsValidation(t *testing.T) {
	app := newTestApp()

	for _, payload := range []string{
		`{"num_simulations": 0}`,
		`{"num_simulations": -5}`,
		`{"num_simulations": 10001}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/game/stats", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "payload %s should be rejected", payload)
	}
}

func TestStatsDefaultsWithoutBody(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/game/stats", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		TotalSimulations int `json:"total_simulations"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, 300, body.TotalSimulations)
}
