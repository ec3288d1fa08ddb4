package server

import (
	"fmt"

	"monopoly/engine"
	"monopoly/simulator"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const (
	defaultSimulations = 300
	maxSimulations     = 10000
)

type handlers struct {
	sim *simulator.Simulator
}

type batchRequest struct {
	NumSimulations int `json:"num_simulations"`
}

// matchResponse is the single-match payload. Winner is null when the match
// ended with no players left standing.
type matchResponse struct {
	Winner  *string                `json:"winner"`
	Rounds  int                    `json:"rounds"`
	Timeout bool                   `json:"timeout"`
	Players []engine.PlayerSummary `json:"players"`
}

func newMatchResponse(result engine.MatchResult) matchResponse {
	response := matchResponse{
		Rounds:  result.Rounds,
		Timeout: result.TimedOut,
		Players: result.Players,
	}
	if result.WinnerStrategy != "" {
		response.Winner = &result.WinnerStrategy
	}
	return response
}

func (h *handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "monopoly-simulator-api",
	})
}

// Simulate runs a single match with the four default players.
func (h *handlers) Simulate(c *fiber.Ctx) error {
	result := h.sim.RunSingleMatch()
	return c.JSON(newMatchResponse(result))
}

// Stats runs a batch of matches and returns the aggregated statistics.
func (h *handlers) Stats(c *fiber.Ctx) error {
	request := batchRequest{NumSimulations: defaultSimulations}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	if request.NumSimulations < 1 || request.NumSimulations > maxSimulations {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("num_simulations must be between 1 and %d", maxSimulations),
		})
	}

	result, err := h.sim.RunBatch(request.NumSimulations)
	if err != nil {
		log.Error().Err(err).Int("num_simulations", request.NumSimulations).Msg("batch simulation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "batch simulation failed",
		})
	}

	return c.JSON(result)
}
