package backtest

import (
	"testing"
	"time"

	"rsi_bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// скриптовая стратегия: решение по последнему закрытию
type scriptStrategy struct {
	buyAt  float64
	sellAt float64
}

func (s *scriptStrategy) Name() string { return "script" }

func (s *scriptStrategy) Evaluate(bars []models.CandleTick) models.Signal {
	last := bars[len(bars)-1].Close
	sig := models.Signal{Symbol: "XRP-USDT", Price: last}
	switch last {
	case s.buyAt:
		sig.Side = models.SideBuy
	case s.sellAt:
		sig.Side = models.SideSell
	}
	return sig
}

func btSettings() *models.TradingSettings {
	return &models.TradingSettings{
		Symbol:          "XRP-USDT",
		Timeframe:       "5m",
		QuoteCcy:        "USDT",
		RSIPeriod:       14,
		SmoothingWindow: 14,
		RSIOverbought:   70,
		RSIOversold:     30,
		StopLoss:        0.02,
		TakeProfit:      0.05,
		RiskPct:         0.1,
		MaxHoldTime:     4 * time.Hour,
		CandleLimit:     100,
		Strategy:        models.StrategyRSI,
	}
}

func btBars(closes []float64) []models.CandleTick {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]models.CandleTick, len(closes))
	for i, c := range closes {
		bars[i] = models.CandleTick{
			Symbol: "XRP-USDT",
			Open:   c, High: c, Low: c, Close: c,
			Start:        start.Add(time.Duration(i) * 5 * time.Minute),
			End:          start.Add(time.Duration(i+1) * 5 * time.Minute),
			TimeframeRaw: "5m",
		}
	}
	return bars
}

func TestRun_StopLossExit(t *testing.T) {
	e := NewEngine(btSettings(), &scriptStrategy{buyAt: 100, sellAt: 110})

	// вход на 100, стоп на 98 (ровно -2%)
	res := e.Run(btBars([]float64{100, 101, 98, 94}), 10000)

	require.Len(t, res.Trades, 1)
	tr := res.Trades[0]
	assert.Equal(t, models.CloseByStopLoss, tr.Reason)
	assert.Equal(t, 100.0, tr.Entry)
	assert.Equal(t, 98.0, tr.Exit)
	assert.InDelta(t, -2.0, tr.PnLPct, 1e-9)

	// amount = 10000*0.1/100 = 10, убыток 20
	assert.InDelta(t, 9980.0, res.FinalBalance, 1e-9)
}

func TestRun_TakeProfitExit(t *testing.T) {
	e := NewEngine(btSettings(), &scriptStrategy{buyAt: 100, sellAt: 110})

	res := e.Run(btBars([]float64{100, 103, 106}), 10000)

	require.Len(t, res.Trades, 1)
	tr := res.Trades[0]
	assert.Equal(t, models.CloseByTakeProfit, tr.Reason)
	assert.Equal(t, 106.0, tr.Exit)
	assert.InDelta(t, 10060.0, res.FinalBalance, 1e-9)
}

func TestRun_SignalExit(t *testing.T) {
	e := NewEngine(btSettings(), &scriptStrategy{buyAt: 100, sellAt: 103})

	res := e.Run(btBars([]float64{100, 101, 103}), 10000)

	require.Len(t, res.Trades, 1)
	assert.Equal(t, models.CloseBySignal, res.Trades[0].Reason)
	assert.InDelta(t, 3.0, res.Trades[0].PnLPct, 1e-9)
}

func TestRun_TimeLimitExit(t *testing.T) {
	cfg := btSettings()
	cfg.MaxHoldTime = 15 * time.Minute // 3 бара по 5m
	e := NewEngine(cfg, &scriptStrategy{buyAt: 100, sellAt: 110})

	// цена болтается в коридоре, стоп и тейк не достаются
	res := e.Run(btBars([]float64{100, 101, 100.5, 101, 100.5, 101}), 10000)

	require.Len(t, res.Trades, 1)
	tr := res.Trades[0]
	assert.Equal(t, models.CloseByTimeLimit, tr.Reason)
	assert.Greater(t, tr.Held, 3)
}

func TestRun_OpenTailClosedAtEnd(t *testing.T) {
	e := NewEngine(btSettings(), &scriptStrategy{buyAt: 100, sellAt: 110})

	res := e.Run(btBars([]float64{100, 101}), 10000)

	require.Len(t, res.Trades, 1, "хвостовая позиция закрывается последним баром")
	assert.Equal(t, 101.0, res.Trades[0].Exit)
}

func TestRun_NoBars(t *testing.T) {
	e := NewEngine(btSettings(), &scriptStrategy{})

	res := e.Run(nil, 10000)

	assert.Empty(t, res.Trades)
	assert.Equal(t, 10000.0, res.FinalBalance)
}

func TestStats_Calculate(t *testing.T) {
	res := &Result{
		InitialBalance: 10000,
		FinalBalance:   10040,
		Trades: []Trade{
			{PnL: 60, PnLPct: 6, Reason: models.CloseByTakeProfit},
			{PnL: -20, PnLPct: -2, Reason: models.CloseByStopLoss},
		},
	}

	s := res.Calculate()

	assert.Equal(t, 2, s.TotalTrades)
	assert.Equal(t, 1, s.WinningTrades)
	assert.Equal(t, 1, s.LosingTrades)
	assert.InDelta(t, 50.0, s.WinRate, 1e-9)
	assert.InDelta(t, 40.0, s.TotalPnL, 1e-9)
	assert.Equal(t, 1, s.ByTakeProfit)
	assert.Equal(t, 1, s.ByStopLoss)
	assert.InDelta(t, 60.0, s.AvgWin, 1e-9)
	assert.InDelta(t, -20.0, s.AvgLoss, 1e-9)
}
