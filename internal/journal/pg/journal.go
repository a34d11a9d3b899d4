package pg

import (
	"context"
	"fmt"

	"rsi_bot/internal/models"
	"rsi_bot/pkg/db"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS closed_trades (
	id         BIGSERIAL PRIMARY KEY,
	symbol     TEXT NOT NULL,
	entry      DOUBLE PRECISION NOT NULL,
	exit       DOUBLE PRECISION NOT NULL,
	amount     DOUBLE PRECISION NOT NULL,
	pnl_pct    DOUBLE PRECISION NOT NULL,
	reason     TEXT NOT NULL,
	opened_at  TIMESTAMPTZ NOT NULL,
	closed_at  TIMESTAMPTZ NOT NULL
)`

// TradeJournal — журнал сделок в Postgres.
type TradeJournal struct {
	tm *db.PgTxManager
}

func NewTradeJournal(tm *db.PgTxManager) *TradeJournal {
	return &TradeJournal{tm: tm}
}

// Migrate создаёт таблицу при старте.
func (j *TradeJournal) Migrate(ctx context.Context) error {
	_, err := j.tm.Conn().Exec(ctx, createTableSQL)
	return errors.Wrap(err, "journal migrate")
}

func (j *TradeJournal) RecordClosed(ctx context.Context, t models.ClosedTrade) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("TradeJournal.RecordClosed: %w", err)
		}
	}()

	return j.tm.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctxTx,
			`INSERT INTO closed_trades
			   (symbol, entry, exit, amount, pnl_pct, reason, opened_at, closed_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			t.Symbol, t.Entry, t.Exit, t.Amount, t.PnLPct, string(t.Reason), t.OpenedAt, t.ClosedAt,
		)
		return err
	})
}

func (j *TradeJournal) Recent(ctx context.Context, limit int) (out []models.ClosedTrade, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("TradeJournal.Recent: %w", err)
		}
	}()

	if limit <= 0 {
		limit = 10
	}

	rows, err := j.tm.Conn().Query(ctx,
		`SELECT symbol, entry, exit, amount, pnl_pct, reason, opened_at, closed_at
		   FROM closed_trades
		  ORDER BY closed_at DESC
		  LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t models.ClosedTrade
		var reason string
		if err := rows.Scan(&t.Symbol, &t.Entry, &t.Exit, &t.Amount, &t.PnLPct,
			&reason, &t.OpenedAt, &t.ClosedAt); err != nil {
			return nil, err
		}
		t.Reason = models.CloseReason(reason)
		out = append(out, t)
	}
	return out, rows.Err()
}
