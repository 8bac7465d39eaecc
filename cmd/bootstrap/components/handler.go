package components

import (
	"parkcore/internal/handler"
	"parkcore/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewGateHandler,
		api.NewSweepHandler,
	),
	fx.Invoke(handler.NewRouter),
)
