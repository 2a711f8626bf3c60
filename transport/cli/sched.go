package cli

import (
	"context"
	"errors"
	"fmt"

	"infopage/config"
	"infopage/di"
	"infopage/infras/sched"
	"infopage/internal/domains/event/model/dto"
	"infopage/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errNoEvent = errors.New("no sched.org event configured, use --event or schedevent in the config file")

// UserAgent identifies the sync tool to sched.org.
func UserAgent() string {
	return "infopage-sched/" + Version
}

// NewSchedCommand imports the sessions of a sched.org event. With --schedule
// it keeps running and syncs on a cron schedule; each run only fetches what
// changed since the previous successful one.
func NewSchedCommand(inject Injector) *cobra.Command {
	var (
		flags    Flags
		event    string
		key      string
		schedule string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "infopage-sched",
		Short: "Import sessions from sched.org into the infopage database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), &flags, inject, func(cfg *config.Config, app *di.App) error {
				if event != "" {
					cfg.Set(config.KeySchedEvent, event)
				}

				if key != "" {
					cfg.Set(config.KeySchedKey, key)
				}

				if cfg.Sched.Event == "" {
					return errNoEvent
				}

				client := sched.New(cfg.Sched.Event, cfg.Sched.Key, UserAgent(), app.Otel)
				source := func(ctx context.Context) ([]dto.ImportEvent, error) {
					return client.Export(ctx, limit)
				}

				out := cmd.OutOrStdout()

				if err := Maintain(cmd.Context(), out, &flags, services(app), source); err != nil {
					return err
				}

				if schedule == "" || flags.List || flags.Slides != "" {
					return nil
				}

				incremental := flags
				incremental.Overwrite = false
				incremental.Clear = false

				return Schedule(cmd.Context(), schedule, func(ctx context.Context) error {
					return Maintain(ctx, out, &incremental, services(app), source)
				})
			})
		},
	}

	flags.Register(cmd.Flags())
	cmd.Flags().StringVarP(&event, "event", "e", "", "specifies the name of the event on sched.org")
	cmd.Flags().StringVarP(&key, "key", "k", "", "specifies the API key (obtain this on your event administration page)")
	cmd.Flags().StringVar(&schedule, "schedule", "", "keeps running and syncs on this cron schedule, e.g. \"*/5 * * * *\"")
	cmd.Flags().IntVar(&limit, "limit", 0, "fetches at most this many sessions per sync")

	return cmd
}

// Schedule runs job on the cron spec until ctx is done. A run that is still
// busy when the next one is due makes that one skip.
func Schedule(ctx context.Context, spec string, job func(ctx context.Context) error) error {
	logger := cron.PrintfLogger(&log.Logger)

	runner := cron.New(
		cron.WithLocation(timezone.GetLocation()),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := runner.AddFunc(spec, func() {
		if err := job(ctx); err != nil {
			log.Error().Err(err).Msg("scheduled sync failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	log.Info().Str("schedule", spec).Msg("waiting for the next sync")

	runner.Start()
	<-ctx.Done()
	<-runner.Stop().Done()

	return nil
}
