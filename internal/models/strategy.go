package models

type StrategyType string

const (
	StrategyRSI StrategyType = "rsi"
)

// Side — итог оценки окна: "BUY"/"SELL" или HOLD (пустая строка).
type Side string

const (
	SideHold Side = ""
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type Signal struct {
	Symbol    string
	Timeframe string
	Side      Side
	Price     float64
	RSI       float64 // последнее значение осциллятора на момент сигнала
	Strategy  StrategyType
	Reason    string
}
