package postgres

import (
	"context"
	"fmt"

	"rsi_bot/internal/journal"
	journalpg "rsi_bot/internal/journal/pg"
	"rsi_bot/internal/modules/config"
	"rsi_bot/internal/runner"
	"rsi_bot/pkg/db"

	"go.uber.org/fx"
)

// Module поднимает пул и журнал сделок. Без db_dsn — Noop-журнал,
// бот работает без хранилища.
func Module() fx.Option {
	return fx.Module("postgres",
		fx.Provide(
			func(ctx context.Context, cfg *config.Config) (journal.Journal, error) {
				if cfg.DB == "" {
					return journal.NewNoop(), nil
				}

				poolMaster, err := db.NewPool(ctx, db.PoolConfig{
					DSN: cfg.DB,
				})
				if err != nil {
					return nil, fmt.Errorf("failed to create poolMaster: %w", err)
				}

				err = poolMaster.Ping(ctx)
				if err != nil {
					return nil, err
				}

				j := journalpg.NewTradeJournal(db.NewPgTxManager(poolMaster))
				if err := j.Migrate(ctx); err != nil {
					return nil, err
				}
				return j, nil
			},
			// журнал для раннера — тот же инстанс, узкий интерфейс
			func(j journal.Journal) runner.Journal {
				return j
			},
		),
	)
}
