package components

import (
	"parkcore/internal/infra/readstore"
	repo_impl "parkcore/internal/infra/repository"
	"parkcore/internal/notify"
	"parkcore/internal/usecase/commands"
	"parkcore/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewExtensionRepository,
			fx.As(new(commands.ExtensionRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRecordRepository,
			fx.As(new(commands.PaymentRecordRepository)),
		),
		fx.Annotate(
			repo_impl.NewFineRepository,
			fx.As(new(commands.FineRepository)),
		),
		fx.Annotate(
			repo_impl.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
		),
		fx.Annotate(
			repo_impl.NewVehicleRepository,
			fx.As(new(commands.VehicleRepository)),
		),
		fx.Annotate(
			repo_impl.NewPricingRepository,
			fx.As(new(commands.PricingRepository)),
		),
		fx.Annotate(
			repo_impl.NewPolicyRepository,
			fx.As(new(commands.PolicyRepository)),
		),
		fx.Annotate(
			repo_impl.NewEntryLogRepository,
			fx.As(new(commands.EntryLogRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationLog,
			fx.As(new(notify.Recorder)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationReadStore)),
		),
	),
)
