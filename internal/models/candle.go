package models

import "time"

// CandleTick — одна закрытая свеча OHLCV.
type CandleTick struct {
	Symbol string

	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64

	Start time.Time
	End   time.Time

	TimeframeRaw string
}

// Closes вытаскивает цены закрытия из окна свечей (для индикаторов).
func Closes(bars []CandleTick) []float64 {
	out := make([]float64, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Close)
	}
	return out
}
