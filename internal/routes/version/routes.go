package version

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
)

// Commit returns the VCS revision embedded by the Go toolchain, or "unknown".
func Commit() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			return setting.Value
		}
	}

	return "unknown"
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(models.VersionResponse{Commit: Commit()})
}
