package telegram

import (
	"context"
	"log"

	"rsi_bot/internal/journal"
	"rsi_bot/internal/modules/config"
	kucoin "rsi_bot/internal/modules/kucoin_client/service"
	"rsi_bot/internal/modules/telegram_bot/service"
	"rsi_bot/internal/runner"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("telegram",
		// Нотификатор: Telegram при наличии токена, иначе stdout.
		fx.Provide(
			func(cfg *config.Config, kc *kucoin.Client, r *runner.Runner, jrnl journal.Journal) (runner.Notifier, error) {
				if cfg.Telegram.Token == "" {
					log.Printf("[TG] токен не задан, уведомления в stdout")
					return service.NewStdout(), nil
				}
				return service.NewTelegram(cfg, kc, r, jrnl)
			},
		),
		// Long-polling только для настоящего бота.
		fx.Invoke(
			func(lc fx.Lifecycle, n runner.Notifier, ctx context.Context) {
				t, ok := n.(*service.Telegram)
				if !ok {
					return
				}
				lc.Append(fx.Hook{
					OnStart: func(context.Context) error {
						go func() {
							if err := t.Start(ctx); err != nil {
								log.Printf("[TG] long-polling завершился: %v", err)
							}
						}()
						return nil
					},
					OnStop: func(context.Context) error {
						t.Stop()
						return nil
					},
				})
			},
		),
	)
}
