package service

import "rsi_bot/internal/models"

type Engine interface {
	// Evaluate — чистая функция окна: никаких side effects,
	// HOLD когда окно короче периода.
	Evaluate(bars []models.CandleTick) models.Signal

	Name() string
}
