package journal

import (
	"context"
	"log"

	"rsi_bot/internal/models"
)

// Journal хранит закрытые сделки. Ошибки записи никогда не фатальны.
type Journal interface {
	RecordClosed(ctx context.Context, t models.ClosedTrade) error
	Recent(ctx context.Context, limit int) ([]models.ClosedTrade, error)
}

// Noop — без БД: сделки только в логе, /status отвечает пустым списком.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (*Noop) RecordClosed(_ context.Context, t models.ClosedTrade) error {
	log.Printf("[JOURNAL] %s %s P/L=%.2f%% (без БД, не сохранено)", t.Symbol, t.Reason, t.PnLPct)
	return nil
}

func (*Noop) Recent(context.Context, int) ([]models.ClosedTrade, error) {
	return nil, nil
}
