package service

import (
	"context"
	"fmt"
	"log"

	"rsi_bot/internal/journal"
	"rsi_bot/internal/modules/config"
	kucoin "rsi_bot/internal/modules/kucoin_client/service"
	"rsi_bot/internal/runner"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram — уведомления в один чат + команды /balance, /position, /status.
type Telegram struct {
	bot    *tgbot.BotAPI
	cfg    *config.Config
	kc     *kucoin.Client
	runner *runner.Runner
	jrnl   journal.Journal
}

func NewTelegram(cfg *config.Config, kc *kucoin.Client, r *runner.Runner, jrnl journal.Journal) (*Telegram, error) {
	b, err := tgbot.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}

	return &Telegram{
		bot:    b,
		cfg:    cfg,
		kc:     kc,
		runner: r,
		jrnl:   jrnl,
	}, nil
}

// Send — best-effort: ошибка отправки только в лог.
func (t *Telegram) Send(msg string) {
	if _, err := t.bot.Send(tgbot.NewMessage(t.cfg.Telegram.ChatID, msg)); err != nil {
		log.Printf("[TG] ошибка отправки: %v", err)
	}
}

func (t *Telegram) Sendf(format string, args ...any) {
	t.Send(fmt.Sprintf(format, args...))
}

// Start блокирует на long-polling до закрытия канала апдейтов.
func (t *Telegram) Start(ctx context.Context) error {
	u := tgbot.NewUpdate(0)
	u.Timeout = 30
	updates := t.bot.GetUpdatesChan(u)
	for update := range updates {
		t.handleUpdate(ctx, update)
	}
	return nil
}

func (t *Telegram) Stop() {
	t.bot.StopReceivingUpdates()
}
