// Package cli holds the cobra commands behind the infopage binaries.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"infopage/config"
	"infopage/di"
	"infopage/shared/logger"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Injector builds the application for a loaded config.
type Injector func(cfg *config.Config) *di.App

// Execute runs cmd and exits with status 1 when it fails.
func Execute(cmd *cobra.Command) {
	logger.InitLogger()

	cmd.Version = Version
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withApp loads the config, connects to the database and runs fn. The
// connection is closed when fn returns.
func withApp(ctx context.Context, flags *Flags, inject Injector, fn func(cfg *config.Config, app *di.App) error) error {
	cfg, err := flags.Load()
	if err != nil {
		return err
	}

	app := inject(cfg)

	if err := app.Conn.Connect(ctx); err != nil {
		return fmt.Errorf("connecting to %s: %w", cfg.DB.Name, err)
	}

	defer func() {
		if err := app.Conn.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database connection")
		}

		if err := app.Otel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("failed to flush traces")
		}
	}()

	return fn(cfg, app)
}

func services(app *di.App) Services {
	return Services{
		Rooms:  app.Rooms,
		Slides: app.Slides,
		Events: app.Events,
	}
}
