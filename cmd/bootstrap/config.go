package bootstrap

import (
	"posimarket-core/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.MarketConfig {
			return cfg.Market
		},
	),
)
