package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/services"
	"github.com/lk16/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	h := ws.NewHandler(c, services.Sessions)
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// upgradeOnly rejects requests that are not websocket upgrades.
func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", middleware.BasicAuth(), upgradeOnly, websocket.New(handleWs))
}
