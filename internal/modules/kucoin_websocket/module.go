package kucoin_websocket

import (
	"context"

	"rsi_bot/internal/modules/config"
	"rsi_bot/internal/modules/kucoin_websocket/service"
	"rsi_bot/internal/runner"

	"go.uber.org/fx"
)

// Module поднимает WS-тикер KuCoin. Стрим опциональный: без
// use_ws_ticker кэш остаётся пустым и раннер ходит за ценой по REST.
func Module() fx.Option {
	return fx.Module("kucoin_websocket",
		fx.Provide(
			service.NewClient, // *service.Client

			// Адаптер: *service.Client -> runner.PriceCache
			func(c *service.Client) runner.PriceCache { return c },
		),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, c *service.Client, ctx context.Context) {
			if !cfg.UseWSTicker {
				return
			}
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go c.Start(ctx, cfg.DefaultSymbol)
					return nil
				},
				OnStop: func(context.Context) error {
					return nil
				},
			})
		}),
	)
}
