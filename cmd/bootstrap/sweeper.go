package bootstrap

import (
	"context"
	"log/slog"

	"parkcore/internal/pkg/clock"
	"parkcore/internal/pkg/config"
	"parkcore/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(registerSweeper),
)

// registerSweeper schedules the automation pass. SkipIfStillRunning keeps
// slow passes from piling up; the use case's own lock covers the manual
// trigger racing the schedule.
func registerSweeper(
	lc fx.Lifecycle,
	cfg config.Config,
	sweep commands.SweepCommands,
	clk clock.Clock,
) error {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := c.AddFunc(cfg.Sweep.Spec, func() {
		ctx := context.Background()
		report, err := sweep.Sweep(ctx, clk.Now())
		if err != nil {
			slog.Error("scheduled sweep failed", "error", err)
			return
		}
		if report.ExpiredHolds+report.FinesIssued+report.FinesRaised+report.RemindersSent > 0 {
			slog.Info("scheduled sweep did work",
				"expired_holds", report.ExpiredHolds,
				"fines_issued", report.FinesIssued,
				"fines_raised", report.FinesRaised,
				"reminders_sent", report.RemindersSent,
			)
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			slog.Info("sweeper scheduled", "spec", cfg.Sweep.Spec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}
