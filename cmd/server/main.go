package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/advochat/advochat-server/internal/app"
	"github.com/advochat/advochat-server/internal/config"
	"github.com/advochat/advochat-server/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:          "advochat-server",
		Short:        "Real-time chat server connecting clients with advocates",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootstrapLogger := log.New(logLevel, logFormat)

			cfg, path, err := config.Load(bootstrapLogger, configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}

			logger := log.New(cfg.LogLevel, cfg.LogFormat)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application := app.New(&cfg, logger)

			logger.Info().Str("addr", cfg.Addr).Str("config", path).Msg("starting advochat server")
			if err := application.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("server exited with error")
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "log format: console or json (overrides config)")

	return cmd
}
