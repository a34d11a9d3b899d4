package models

import (
	"fmt"
	"time"

	"rsi_bot/internal/modules/config"
)

// TradingSettings — параметры стратегии и риска. Неизменяемы после старта.
type TradingSettings struct {
	Symbol    string `json:"symbol"`    // например "XRP-USDT"
	Timeframe string `json:"timeframe"` // "5m"
	QuoteCcy  string `json:"quote_ccy"` // валюта баланса, обычно USDT

	// RSI
	RSIPeriod       int     `json:"rsi_period"`
	SmoothingWindow int     `json:"smoothing_window"` // N для alpha=1/N
	RSIOverbought   float64 `json:"rsi_overbought"`
	RSIOversold     float64 `json:"rsi_oversold"`

	// Риск / выходы. Доли, не проценты: 0.02 => 2%.
	StopLoss    float64       `json:"stop_loss"`
	TakeProfit  float64       `json:"take_profit"`
	RiskPct     float64       `json:"risk_pct"` // доля свободного баланса на сделку
	MaxHoldTime time.Duration `json:"max_hold_time"`

	CandleLimit int           `json:"candle_limit"` // окно истории, свечей
	MinSleep    time.Duration `json:"min_sleep"`    // пол паузы между циклами

	Strategy StrategyType `json:"strategy"`
}

// NewTradingSettingsFromDefaults собирает настройки из дефолтов конфига.
func NewTradingSettingsFromDefaults(cfg *config.Config) *TradingSettings {
	return &TradingSettings{
		Symbol:    cfg.DefaultSymbol,
		Timeframe: cfg.DefaultTimeframe,
		QuoteCcy:  cfg.DefaultQuoteCcy,

		RSIPeriod:       cfg.DefaultRSIPeriod,
		SmoothingWindow: cfg.DefaultSmoothingWindow,
		RSIOverbought:   cfg.DefaultRSIOverbought,
		RSIOversold:     cfg.DefaultRSIOversold,

		StopLoss:    cfg.DefaultStopLoss,
		TakeProfit:  cfg.DefaultTakeProfit,
		RiskPct:     cfg.DefaultRiskPct,
		MaxHoldTime: cfg.DefaultMaxHoldTime,

		CandleLimit: cfg.DefaultCandleLimit,
		MinSleep:    cfg.DefaultMinSleep,

		Strategy: StrategyType(cfg.DefaultStrategy),
	}
}

// Validate проверяет инварианты до запуска раннера.
func (s *TradingSettings) Validate() error {
	if s.Symbol == "" {
		return fmt.Errorf("symbol is empty")
	}
	if s.RSIPeriod < 2 {
		return fmt.Errorf("rsi_period %d < 2", s.RSIPeriod)
	}
	if s.SmoothingWindow < 1 {
		return fmt.Errorf("smoothing_window %d < 1", s.SmoothingWindow)
	}
	if !(0 < s.RSIOversold && s.RSIOversold < s.RSIOverbought && s.RSIOverbought < 100) {
		return fmt.Errorf("thresholds: need 0 < oversold(%.1f) < overbought(%.1f) < 100",
			s.RSIOversold, s.RSIOverbought)
	}
	if s.RiskPct <= 0 || s.RiskPct > 1 {
		return fmt.Errorf("risk_pct %.4f out of (0,1]", s.RiskPct)
	}
	return nil
}
