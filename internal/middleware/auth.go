package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/lk16/reversi/internal/config"
)

// BasicAuth middleware that checks for basic auth credentials.
// Requests pass through when no credentials are configured.
func BasicAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

		if !cfg.BasicAuthEnabled() {
			return c.Next()
		}

		unauthorizedHandler := func(c *fiber.Ctx) error {
			// This triggers the browser to show a login dialog
			c.Set("WWW-Authenticate", `Basic realm="Restricted"`)

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		handler := basicauth.New(basicauth.Config{
			Users: map[string]string{
				cfg.BasicAuthUsername: cfg.BasicAuthPassword,
			},
			Realm:        "Restricted",
			Unauthorized: unauthorizedHandler,
		})

		return handler(c)
	}
}
