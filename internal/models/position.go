package models

import "time"

// Position — единственная открытая позиция по символу.
// nil-указатель в раннере означает "вне рынка".
type Position struct {
	Symbol   string
	Entry    float64 // цена входа, > 0
	Amount   float64 // количество базовой монеты, > 0
	OpenedAt time.Time
}

// PnLPct — реализованный результат в процентах при выходе по цене exit.
func (p *Position) PnLPct(exit float64) float64 {
	return (exit/p.Entry - 1) * 100
}

// CloseReason — почему позиция была закрыта.
type CloseReason string

const (
	CloseBySignal     CloseReason = "signal"
	CloseByStopLoss   CloseReason = "stop_loss"
	CloseByTakeProfit CloseReason = "take_profit"
	CloseByTimeLimit  CloseReason = "time_limit"
)

// ClosedTrade — запись журнала по завершённой сделке.
type ClosedTrade struct {
	Symbol   string
	Entry    float64
	Exit     float64
	Amount   float64
	PnLPct   float64
	Reason   CloseReason
	OpenedAt time.Time
	ClosedAt time.Time
}
