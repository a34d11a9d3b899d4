package kucoin_client

import (
	"rsi_bot/internal/modules/kucoin_client/service"
	"rsi_bot/internal/runner"

	"go.uber.org/fx"
)

// Module собирает REST-клиент KuCoin и отдаёт его раннеру
// в виде узких интерфейсов.
func Module() fx.Option {
	return fx.Module("kucoin_client",
		fx.Provide(
			service.NewClient, // *service.Client

			// Адаптеры: один клиент закрывает оба интерфейса.
			func(c *service.Client) runner.PriceSource { return c },
			func(c *service.Client) runner.ExecutionGateway { return c },
		),
	)
}
