package server

import (
	"monopoly/config"
	"monopoly/simulator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// New builds the fiber app exposing the simulator.
func New(sim *simulator.Simulator, settings config.Settings) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "monopoly-simulator-api",
	})

	app.Use(cors.New())
	app.Use(requestLogger())
	if settings.RateLimitEnabled {
		app.Use(limiter.New(limiter.Config{
			Max:        settings.RateLimitMax,
			Expiration: settings.RateLimitWindow,
		}))
	}

	h := &handlers{sim: sim}

	app.Get("/", h.Health)
	app.Get("/health", h.Health)

	route := app.Group("/game")
	route.Post("/simulate", h.Simulate)
	route.Post("/stats", h.Stats)

	return app
}
