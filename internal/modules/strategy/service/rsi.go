package service

import (
	"fmt"

	"rsi_bot/internal/models"
)

// защита от деления на ноль при avgLoss == 0
const epsilon = 1e-10

type RSI struct {
	cfg *models.TradingSettings
}

func NewRSI(cfg *models.TradingSettings) *RSI {
	return &RSI{cfg: cfg}
}

func (s *RSI) Name() string { return "rsi" }

// WildersRSI считает осциллятор по ценам закрытия, сглаживание Уайлдера
// с alpha = 1/window. Сид — первое значение ряда (нулевой прогрев,
// как у ewm(adjust=False)), поэтому ранние индексы смещены, но определены.
// Длина результата равна длине входа.
func WildersRSI(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}

	alpha := 1.0 / float64(window)
	var avgGain, avgLoss float64

	for i := range closes {
		var gain, loss float64
		if i > 0 {
			delta := closes[i] - closes[i-1]
			if delta > 0 {
				gain = delta
			} else {
				loss = -delta
			}
		}

		if i == 0 {
			avgGain, avgLoss = gain, loss
		} else {
			avgGain = alpha*gain + (1-alpha)*avgGain
			avgLoss = alpha*loss + (1-alpha)*avgLoss
		}

		rs := avgGain / (avgLoss + epsilon)
		out[i] = 100 - 100/(1+rs)
	}

	return out
}

// Evaluate: HOLD если истории меньше периода; дальше строго по порогам,
// равенство порогу — тоже HOLD.
func (s *RSI) Evaluate(bars []models.CandleTick) models.Signal {
	sig := models.Signal{
		Symbol:    s.cfg.Symbol,
		Timeframe: s.cfg.Timeframe,
		Strategy:  models.StrategyRSI,
	}

	if len(bars) < s.cfg.RSIPeriod {
		sig.Reason = fmt.Sprintf("warmup %d/%d", len(bars), s.cfg.RSIPeriod)
		return sig
	}

	rsi := WildersRSI(models.Closes(bars), s.cfg.SmoothingWindow)
	latest := rsi[len(rsi)-1]

	sig.RSI = latest
	sig.Price = bars[len(bars)-1].Close

	switch {
	case latest < s.cfg.RSIOversold:
		sig.Side = models.SideBuy
	case latest > s.cfg.RSIOverbought:
		sig.Side = models.SideSell
	}
	sig.Reason = fmt.Sprintf("RSI=%.1f @ %.4f", latest, sig.Price)

	return sig
}
