package bootstrap

import (
	"log/slog"

	"parkcore/internal/payment"
	"parkcore/internal/pkg/config"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

// NewPaymentGateway picks the gateway by configuration: Stripe for real
// deployments, the stub everywhere else.
func NewPaymentGateway(cfg config.Config, logger *slog.Logger) payment.Gateway {
	switch cfg.Payment.Provider {
	case "stripe":
		return payment.NewStripeGateway(cfg.Payment.StripeSecretKey, cfg.Payment.Currency)
	default:
		return payment.NewStubGateway(logger)
	}
}
