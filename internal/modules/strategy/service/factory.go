package service

import (
	"rsi_bot/internal/models"
)

func NewEngine(cfg *models.TradingSettings) Engine {
	// пока единственная стратегия; слот для новых — через cfg.Strategy
	return NewRSI(cfg)
}
