package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/advochat/advochat-server/internal/config"
	"github.com/advochat/advochat-server/internal/core"
	"github.com/advochat/advochat-server/internal/directory"
	"github.com/advochat/advochat-server/internal/notify"
	"github.com/advochat/advochat-server/internal/scheduling"
	transporthttp "github.com/advochat/advochat-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// New constructs the application with provided configuration. The room
// registry lives for the life of the process; nothing survives a restart.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	hub := core.NewHub(core.NewRegistry(), logger)
	gateway := notify.NewGateway(hub, logger)

	dir := directory.Seeded()
	scheduler := scheduling.NewService(dir, gateway, logger)

	server := transporthttp.NewServer(hub, dir, scheduler, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
