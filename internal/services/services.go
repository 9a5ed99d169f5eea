package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/session"
)

// Services contains the state shared by all requests.
type Services struct {
	Sessions *session.Registry
}

func InitServices(cfg *config.ServerConfig) *Services {
	return &Services{
		Sessions: session.NewRegistry(cfg.Seed, cfg.SessionTTL),
	}
}

// FromCtx returns the services stored in the request locals.
func FromCtx(c *fiber.Ctx) *Services {
	return c.Locals("services").(*Services) //nolint: errcheck
}
