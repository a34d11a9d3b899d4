package main

import (
	"context"
	"log"

	"rsi_bot/internal/modules/config"
	"rsi_bot/internal/modules/health"
	"rsi_bot/internal/modules/kucoin_client"
	"rsi_bot/internal/modules/kucoin_websocket"
	"rsi_bot/internal/modules/postgres"
	"rsi_bot/internal/modules/strategy"
	telegram "rsi_bot/internal/modules/telegram_bot"
	"rsi_bot/internal/runner"
	"rsi_bot/pkg/logger"
	"rsi_bot/pkg/tracing"

	"go.uber.org/fx"
)

func main() {
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
		),
		config.Module(),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config) {
			if cfg.Jaeger.Host == "" {
				return
			}
			_, closer, err := tracing.InitTracer(tracing.Config{
				Host: cfg.Jaeger.Host,
				Port: cfg.Jaeger.Port,
			})
			if err != nil {
				logger.Error("init tracer: %v", err)
				return
			}
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					closer()
					return nil
				},
			})
		}),
		postgres.Module(),
		strategy.Module(),
		kucoin_client.Module(),
		kucoin_websocket.Module(),
		health.Module(),
		runner.Module(),
		telegram.Module(),
	)
	app.Run()
}
