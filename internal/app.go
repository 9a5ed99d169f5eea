package internal

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/routes"
	"github.com/lk16/reversi/internal/services"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024 // 64KB
)

// SetupApp loads the configuration from the environment and creates the app.
func SetupApp() (*fiber.App, *config.ServerConfig, *services.Services) {
	cfg := config.LoadServerConfig()
	svc := services.InitServices(cfg)

	return NewApp(cfg, svc), cfg, svc
}

// NewApp creates the Fiber app with all middleware and routes.
func NewApp(cfg *config.ServerConfig, svc *services.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Make services and config available to handlers
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", svc)
		c.Locals("config", cfg)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging(os.Stderr))

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}
