package service

import (
	"context"
	"fmt"
	"strings"

	"rsi_bot/pkg/logger"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (t *Telegram) handleUpdate(ctx context.Context, update tgbot.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}

	// Чужие чаты игнорируем: бот персональный.
	if msg.Chat.ID != t.cfg.Telegram.ChatID {
		return
	}

	switch msg.Command() {
	case "start":
		t.handleStart()
	case "balance":
		t.handleBalance(ctx)
	case "position":
		t.handlePosition()
	case "status":
		t.handleStatus(ctx)
	default:
	}
}

func (t *Telegram) handleStart() {
	t.Send("Привет! Я RSI-бот для KuCoin.\n\n" +
		"/balance — свободный баланс\n" +
		"/position — открытая позиция\n" +
		"/status — последние закрытые сделки")
}

// /balance — что лежит на торговом счёте.
func (t *Telegram) handleBalance(ctx context.Context) {
	bal, err := t.kc.TradeBalance(ctx, t.cfg.DefaultQuoteCcy)
	if err != nil {
		logger.Error("handleBalance: %v", err)
		t.Sendf("❗️ Ошибка получения баланса: %v", err)
		return
	}
	t.Sendf("💰 Баланс %s\nВсего: %.2f\nСвободно: %.2f\nВ ордерах: %.2f",
		t.cfg.DefaultQuoteCcy, bal.Total, bal.Free, bal.Holds)
}

// /position — снапшот текущей позиции из раннера.
func (t *Telegram) handlePosition() {
	pos, ok := t.runner.CurrentPosition()
	if !ok {
		t.Sendf("📭 Вне рынка. RSI=%.1f", t.runner.LastRSI())
		return
	}
	t.Sendf("📊 %s LONG\nВход: %.4f\nОбъём: %.4f\nОткрыта: %s\nRSI=%.1f",
		pos.Symbol, pos.Entry, pos.Amount,
		pos.OpenedAt.Format("02.01 15:04"), t.runner.LastRSI())
}

// /status — последние сделки из журнала.
func (t *Telegram) handleStatus(ctx context.Context) {
	trades, err := t.jrnl.Recent(ctx, 10)
	if err != nil {
		logger.Error("handleStatus: %v", err)
		t.Sendf("❗️ Ошибка чтения журнала: %v", err)
		return
	}
	if len(trades) == 0 {
		t.Send("📭 Закрытых сделок пока нет")
		return
	}

	var b strings.Builder
	b.WriteString("📒 Последние сделки:\n")
	for _, tr := range trades {
		fmt.Fprintf(&b, "- %s %s %.4f -> %.4f  %+.2f%%\n",
			tr.ClosedAt.Format("02.01 15:04"), tr.Symbol, tr.Entry, tr.Exit, tr.PnLPct)
	}
	t.Send(b.String())
}
