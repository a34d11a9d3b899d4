package backtest

import (
	"fmt"

	"rsi_bot/internal/models"

	"github.com/markcheno/go-talib"
)

// Stats — сводка прогона.
type Stats struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64

	TotalPnL    float64
	TotalPnLPct float64

	AvgWin  float64
	AvgLoss float64

	MaxDrawdownPct float64

	// закрытия по причинам
	BySignal     int
	ByStopLoss   int
	ByTakeProfit int
	ByTimeLimit  int

	// контекст тренда на конец истории: close против EMA(50)
	TrendUp bool
}

func (r *Result) Calculate() *Stats {
	if r.stats != nil {
		return r.stats
	}

	s := &Stats{TotalTrades: len(r.Trades)}
	s.TotalPnL = r.FinalBalance - r.InitialBalance
	if r.InitialBalance > 0 {
		s.TotalPnLPct = s.TotalPnL / r.InitialBalance * 100
	}

	if len(r.Trades) == 0 {
		r.stats = s
		return s
	}

	var totalWin, totalLoss float64
	peak := r.InitialBalance
	running := r.InitialBalance

	for _, t := range r.Trades {
		if t.PnL > 0 {
			s.WinningTrades++
			totalWin += t.PnL
		} else if t.PnL < 0 {
			s.LosingTrades++
			totalLoss += t.PnL
		}

		running += t.PnL
		if running > peak {
			peak = running
		}
		if peak > 0 {
			dd := (peak - running) / peak * 100
			if dd > s.MaxDrawdownPct {
				s.MaxDrawdownPct = dd
			}
		}

		switch t.Reason {
		case models.CloseByStopLoss:
			s.ByStopLoss++
		case models.CloseByTakeProfit:
			s.ByTakeProfit++
		case models.CloseByTimeLimit:
			s.ByTimeLimit++
		default:
			s.BySignal++
		}
	}

	s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
	if s.WinningTrades > 0 {
		s.AvgWin = totalWin / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AvgLoss = totalLoss / float64(s.LosingTrades)
	}

	r.stats = s
	return s
}

// MarkTrend проставляет тренд-контекст по EMA(50) последнего закрытия.
func (s *Stats) MarkTrend(closes []float64) {
	const emaLen = 50
	if len(closes) < emaLen {
		return
	}
	ema := talib.Ema(closes, emaLen)
	s.TrendUp = closes[len(closes)-1] > ema[len(ema)-1]
}

func (s *Stats) Print() {
	fmt.Println("\n=== Результаты прогона ===")
	fmt.Printf("Сделок:        %d\n", s.TotalTrades)
	fmt.Printf("Прибыльных:    %d (%.1f%%)\n", s.WinningTrades, s.WinRate)
	fmt.Printf("Убыточных:     %d\n\n", s.LosingTrades)

	fmt.Printf("P/L:           %+.2f (%.2f%%)\n", s.TotalPnL, s.TotalPnLPct)
	fmt.Printf("Средний плюс:  %+.2f\n", s.AvgWin)
	fmt.Printf("Средний минус: %+.2f\n", s.AvgLoss)
	fmt.Printf("Макс. просадка: %.2f%%\n\n", s.MaxDrawdownPct)

	fmt.Printf("Выходы: сигнал=%d стоп=%d тейк=%d время=%d\n",
		s.BySignal, s.ByStopLoss, s.ByTakeProfit, s.ByTimeLimit)
	if s.TrendUp {
		fmt.Println("Тренд на конец истории: выше EMA(50)")
	} else {
		fmt.Println("Тренд на конец истории: ниже EMA(50)")
	}
}
