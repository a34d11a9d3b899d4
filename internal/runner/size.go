package runner

import (
	"context"
	"fmt"
)

// calcAmount считает объём сделки: riskPct от свободного баланса по цене.
// Ошибка означает "пропусти цикл", а не "купи ноль".
func (r *Runner) calcAmount(ctx context.Context, price float64) (float64, error) {
	if price <= 0 {
		return 0, fmt.Errorf("price <= 0")
	}

	free, err := r.gw.FreeBalance(ctx, r.cfg.QuoteCcy)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	if free <= 0 {
		return 0, fmt.Errorf("free balance <= 0")
	}

	riskAmount := free * r.cfg.RiskPct
	return riskAmount / price, nil
}
