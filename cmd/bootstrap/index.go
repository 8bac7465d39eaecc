package bootstrap

import (
	"context"
	"log/slog"

	"parkcore/internal/availability"
	"parkcore/internal/pkg/clock"
	"parkcore/internal/usecase/commands"

	"go.uber.org/fx"
)

var AvailabilityModule = fx.Module("availability",
	fx.Provide(
		availability.NewIndex,
	),
	fx.Invoke(registerIndexSeed),
)

// registerIndexSeed rebuilds the in-memory book from the store before the
// server starts taking bookings: confirmed reservations and pending
// maintenance windows.
func registerIndexSeed(
	lc fx.Lifecycle,
	index *availability.Index,
	reservations commands.ReservationRepository,
	slots commands.SlotRepository,
	clk clock.Clock,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			confirmed, err := reservations.FindConfirmed(ctx)
			if err != nil {
				return err
			}
			for _, res := range confirmed {
				index.SeedConfirmed(res.SlotID(), res.ID(), res.Slot())
			}

			windows, err := slots.FindMaintenanceFrom(ctx, clk.Now())
			if err != nil {
				return err
			}
			for _, w := range windows {
				index.AddMaintenance(w.SlotID, w.Window)
			}

			slog.Info("availability index seeded",
				"confirmed", len(confirmed), "maintenance_windows", len(windows))
			return nil
		},
	})
}
