package backtest

import (
	"rsi_bot/internal/models"
	"rsi_bot/internal/modules/strategy/service"
)

// Trade — одна завершённая сделка прогона.
type Trade struct {
	Entry    float64
	Exit     float64
	Amount   float64
	PnL      float64 // в котируемой валюте
	PnLPct   float64
	Reason   models.CloseReason
	OpenedAt int    // индекс бара входа
	ClosedAt int    // индекс бара выхода
	Held     int    // баров в позиции
}

// Result — итог прогона по истории.
type Result struct {
	InitialBalance float64
	FinalBalance   float64
	Trades         []Trade

	stats *Stats
}

// Engine гоняет стратегию по историческим барам с той же
// машиной состояний, что и живой раннер: одна позиция, выходы
// по приоритету время -> стоп -> тейк, сайзинг от свободного баланса.
type Engine struct {
	cfg   *models.TradingSettings
	strat service.Engine
}

func NewEngine(cfg *models.TradingSettings, strat service.Engine) *Engine {
	return &Engine{cfg: cfg, strat: strat}
}

func (e *Engine) Run(bars []models.CandleTick, initialBalance float64) *Result {
	res := &Result{
		InitialBalance: initialBalance,
		FinalBalance:   initialBalance,
	}
	if len(bars) == 0 {
		return res
	}

	// сколько баров соответствует MaxHoldTime на этом таймфрейме
	maxHoldBars := 0
	if len(bars) > 0 && bars[0].End.After(bars[0].Start) {
		barDur := bars[0].End.Sub(bars[0].Start)
		maxHoldBars = int(e.cfg.MaxHoldTime / barDur)
	}

	balance := initialBalance
	var pos *Trade

	for i := range bars {
		px := bars[i].Close

		// 1. Выходы, приоритет как у раннера.
		if pos != nil {
			reason := models.CloseReason("")
			switch {
			case maxHoldBars > 0 && i-pos.OpenedAt > maxHoldBars:
				reason = models.CloseByTimeLimit
			case px <= pos.Entry*(1-e.cfg.StopLoss):
				reason = models.CloseByStopLoss
			case px >= pos.Entry*(1+e.cfg.TakeProfit):
				reason = models.CloseByTakeProfit
			}
			if reason != "" {
				balance = e.close(res, balance, pos, px, i, reason)
				pos = nil
			}
		}

		// 2. Сигнал по окну до текущего бара включительно.
		lo := 0
		if e.cfg.CandleLimit > 0 && i+1 > e.cfg.CandleLimit {
			lo = i + 1 - e.cfg.CandleLimit
		}
		sig := e.strat.Evaluate(bars[lo : i+1])

		switch sig.Side {
		case models.SideBuy:
			if pos != nil {
				continue // уже в позиции, повторный BUY игнорируем
			}
			amount := balance * e.cfg.RiskPct / px
			if amount <= 0 {
				continue
			}
			pos = &Trade{Entry: px, Amount: amount, OpenedAt: i}
			balance -= amount * px
		case models.SideSell:
			if pos != nil {
				balance = e.close(res, balance, pos, px, i, models.CloseBySignal)
				pos = nil
			}
		}
	}

	// хвост: закрываем по последнему бару
	if pos != nil {
		last := len(bars) - 1
		balance = e.close(res, balance, pos, bars[last].Close, last, models.CloseBySignal)
	}

	res.FinalBalance = balance
	return res
}

func (e *Engine) close(res *Result, balance float64, pos *Trade, px float64, i int, reason models.CloseReason) float64 {
	pos.Exit = px
	pos.ClosedAt = i
	pos.Held = i - pos.OpenedAt
	pos.PnL = pos.Amount * (px - pos.Entry)
	pos.PnLPct = (px/pos.Entry - 1) * 100
	pos.Reason = reason
	res.Trades = append(res.Trades, *pos)
	return balance + pos.Amount*px
}
