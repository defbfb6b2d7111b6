package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ncobase/workforce/config"
	"github.com/ncobase/workforce/internal/server"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/ncobase/workforce/logging/observes"
	"github.com/ncobase/workforce/version"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, configFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "conf", "c", "", "config file path")
	return cmd
}

func serve(ctx context.Context, configFile string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, cleanupLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer cleanupLogger()
	log.SetVersion(version.GetVersionInfo().Version)

	cleanupSentry, err := observes.NewSentry(cfg.Observes.Sentry, cfg.AppName, log)
	if err != nil {
		log.Warn(ctx, "Sentry disabled", "error", err)
	} else {
		defer cleanupSentry()
	}

	srv, cleanup, err := server.NewServer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg.Watch(func(updated *config.Config) {
		log.SetLevel(updated.Logger.Level)
		log.Info(context.Background(), "Config reloaded", "logger.level", updated.Logger.Level)
	})

	return srv.Run(ctx)
}
