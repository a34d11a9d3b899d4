package runner

import (
	"context"
	"log"

	"rsi_bot/internal/models"
)

// executeSignal применяет сигнал к машине состояний FLAT/OPEN.
// BUY при открытой позиции игнорируется — позиция всегда одна.
func (r *Runner) executeSignal(ctx context.Context, sig models.Signal) {
	switch sig.Side {
	case models.SideBuy:
		r.tryOpen(ctx, sig)
	case models.SideSell:
		if r.position == nil {
			return
		}
		px := r.exitPrice(ctx, sig.Price)
		r.closePosition(ctx, px, models.CloseBySignal)
	}
}

func (r *Runner) tryOpen(ctx context.Context, sig models.Signal) {
	if r.position != nil {
		return
	}

	px := r.exitPrice(ctx, sig.Price)
	if px <= 0 {
		log.Printf("[ORDER] %s: нет валидной цены, пропуск BUY", r.cfg.Symbol)
		return
	}

	amount, err := r.calcAmount(ctx, px)
	if err != nil {
		// InvalidSizing: отменяем только эту покупку, остаёмся FLAT
		log.Printf("[SIZE] %s: %v", r.cfg.Symbol, err)
		return
	}

	minSz, err := r.gw.MinOrderSize(ctx, r.cfg.Symbol)
	if err != nil {
		log.Printf("[ORDER] %s: мета символа недоступна: %v", r.cfg.Symbol, err)
		return
	}
	if amount < minSz {
		log.Printf("[ORDER] %s: объём %.8f ниже минимума %.8f, пропуск", r.cfg.Symbol, amount, minSz)
		return
	}

	orderID, err := r.gw.MarketBuy(ctx, r.cfg.Symbol, amount)
	if err != nil {
		// OrderRejected: переход не состоялся, позиции нет, живём дальше
		log.Printf("[ORDER] ❗️ %s: покупка отклонена: %v", r.cfg.Symbol, err)
		r.sendf("❌ [%s] Ошибка покупки: %v", r.cfg.Symbol, err)
		return
	}

	r.mu.Lock()
	r.position = &models.Position{
		Symbol:   r.cfg.Symbol,
		Entry:    px,
		Amount:   amount,
		OpenedAt: r.now(),
	}
	r.mu.Unlock()

	log.Printf("[ORDER] ✅ BUY %s %.8f @ %.4f (orderId=%s)", r.cfg.Symbol, amount, px, orderID)
	r.sendf("✅ BUY %s\nЦена: %.4f\nОбъём: %.4f\nRSI: %.1f", r.cfg.Symbol, px, amount, sig.RSI)
}

// checkPositionLimits — выходы в фиксированном приоритете:
// сперва время, потом стоп, потом тейк. Срабатывает только первый.
func (r *Runner) checkPositionLimits(ctx context.Context) {
	pos := r.position
	if pos == nil {
		return
	}

	px, err := r.currentPrice(ctx)
	if err != nil || px <= 0 {
		log.Printf("[EXIT] %s: нет текущей цены: %v", r.cfg.Symbol, err)
		return
	}

	elapsed := r.now().Sub(pos.OpenedAt)

	switch {
	case elapsed > r.cfg.MaxHoldTime:
		r.closePosition(ctx, px, models.CloseByTimeLimit)
	case px <= pos.Entry*(1-r.cfg.StopLoss):
		r.closePosition(ctx, px, models.CloseByStopLoss)
	case px >= pos.Entry*(1+r.cfg.TakeProfit):
		r.closePosition(ctx, px, models.CloseByTakeProfit)
	}
}

// closePosition продаёт всю позицию. При отказе биржи состояние не трогаем —
// продадим на следующем цикле. Ошибка журнала/уведомления не фатальна.
func (r *Runner) closePosition(ctx context.Context, px float64, reason models.CloseReason) {
	pos := r.position
	if pos == nil {
		return
	}

	orderID, err := r.gw.MarketSell(ctx, pos.Symbol, pos.Amount)
	if err != nil {
		log.Printf("[ORDER] ❗️ %s: продажа отклонена (%s): %v", pos.Symbol, reason, err)
		r.sendf("❗️ [%s] Ошибка продажи: %v", pos.Symbol, err)
		return
	}

	pl := pos.PnLPct(px)
	closed := models.ClosedTrade{
		Symbol:   pos.Symbol,
		Entry:    pos.Entry,
		Exit:     px,
		Amount:   pos.Amount,
		PnLPct:   pl,
		Reason:   reason,
		OpenedAt: pos.OpenedAt,
		ClosedAt: r.now(),
	}

	r.mu.Lock()
	r.position = nil
	r.mu.Unlock()

	if r.jrnl != nil {
		if jerr := r.jrnl.RecordClosed(ctx, closed); jerr != nil {
			log.Printf("[JOURNAL] %s: запись не удалась: %v", pos.Symbol, jerr)
		}
	}

	log.Printf("[ORDER] ✅ SELL %s %.8f @ %.4f P/L=%.2f%% (%s, orderId=%s)",
		pos.Symbol, pos.Amount, px, pl, reason, orderID)

	switch reason {
	case models.CloseByStopLoss:
		r.sendf("❌ Stop Loss %s\nЦена: %.4f\nP/L: %.2f%%", pos.Symbol, px, pl)
	case models.CloseByTakeProfit:
		r.sendf("🎯 Take Profit %s\nЦена: %.4f\nP/L: %.2f%%", pos.Symbol, px, pl)
	case models.CloseByTimeLimit:
		held := closed.ClosedAt.Sub(pos.OpenedAt)
		r.sendf("🕒 Выход по времени %s\nЦена: %.4f\nP/L: %.2f%%\nДержали: %.1fч",
			pos.Symbol, px, pl, held.Hours())
	default:
		r.sendf("✅ SELL %s\nЦена: %.4f\nP/L: %.2f%%\nRSI: %.1f", pos.Symbol, px, pl, r.LastRSI())
	}
}

// exitPrice: актуальная цена, при недоступности — цена закрытия из сигнала.
func (r *Runner) exitPrice(ctx context.Context, fallback float64) float64 {
	if px, err := r.currentPrice(ctx); err == nil && px > 0 {
		return px
	}
	return fallback
}
