package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
)

const pruneInterval = time.Minute

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg, svc := internal.SetupApp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Remove idle games in the background
	go svc.Sessions.Run(ctx, pruneInterval)

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			slog.Error("Failed to shut down", "error", err)
		}
	}()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	slog.Info("Starting server", "address", address, "basic_auth", cfg.BasicAuthEnabled())
	log.Fatal(app.Listen(address))
}
