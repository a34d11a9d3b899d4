package strategy

import (
	"rsi_bot/internal/models"
	"rsi_bot/internal/modules/strategy/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("strategy",
		fx.Provide(
			models.NewTradingSettingsFromDefaults, // *models.TradingSettings
			service.NewEngine,                     // service.Engine
		),
	)
}
