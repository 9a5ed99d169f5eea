package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.BasicAuth())

	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games", ListGames)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Delete("/games/:id", DeleteGame)
}
