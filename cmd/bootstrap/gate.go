package bootstrap

import (
	"parkcore/internal/pkg/config"
	"parkcore/internal/pkg/gatetoken"

	"go.uber.org/fx"
)

var GateModule = fx.Module("gate",
	fx.Provide(
		NewGateTokenService,
	),
)

func NewGateTokenService(cfg config.Config) *gatetoken.Service {
	return gatetoken.NewService(cfg.Gate.TokenSecret, cfg.Gate.TokenLifetime)
}
