package runner

import (
	"context"
	"log"
	"sync"
	"time"

	"rsi_bot/internal/helper"
	"rsi_bot/internal/models"
	healthsvc "rsi_bot/internal/modules/health/service"
	"rsi_bot/internal/modules/strategy/service"
)

// PriceSource — источник свечей и последней цены (REST).
type PriceSource interface {
	FetchCandles(ctx context.Context, symbol, timeframe string, limit int) ([]models.CandleTick, error)
	LastPrice(ctx context.Context, symbol string) (float64, error)
}

// ExecutionGateway — узкий интерфейс биржи: ровно четыре операции.
type ExecutionGateway interface {
	MarketBuy(ctx context.Context, symbol string, amount float64) (string, error)
	MarketSell(ctx context.Context, symbol string, amount float64) (string, error)
	MinOrderSize(ctx context.Context, symbol string) (float64, error)
	FreeBalance(ctx context.Context, ccy string) (float64, error)
}

// Notifier — best-effort уведомления; ошибки отправки цикл не трогают.
type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...any)
}

// PriceCache — последняя цена из WS-стрима, если он включён.
type PriceCache interface {
	Last(symbol string) (float64, bool)
}

// Journal — журнал закрытых сделок; ошибки записи не фатальны.
type Journal interface {
	RecordClosed(ctx context.Context, t models.ClosedTrade) error
}

// Runner гоняет один цикл за раз: окно свечей -> сигнал -> переход ->
// проверка выходов -> сон до следующей свечи.
type Runner struct {
	cfg    *models.TradingSettings
	engine service.Engine
	prices PriceSource
	gw     ExecutionGateway
	cache  PriceCache
	jrnl   Journal
	state  *healthsvc.State

	n Notifier

	mu       sync.Mutex
	position *models.Position
	lastRSI  float64

	now func() time.Time
}

func New(
	cfg *models.TradingSettings,
	engine service.Engine,
	prices PriceSource,
	gw ExecutionGateway,
	cache PriceCache,
	jrnl Journal,
	state *healthsvc.State,
) *Runner {
	return &Runner{
		cfg:    cfg,
		engine: engine,
		prices: prices,
		gw:     gw,
		cache:  cache,
		jrnl:   jrnl,
		state:  state,
		now:    time.Now,
	}
}

// SetNotifier вызывается при старте, до запуска цикла.
func (r *Runner) SetNotifier(n Notifier) { r.n = n }

func (r *Runner) sendf(format string, args ...any) {
	if r.n != nil {
		r.n.Sendf(format, args...)
	}
}

// Start блокирует до отмены ctx. Ни одна ошибка цикла не роняет луп.
func (r *Runner) Start(ctx context.Context) {
	interval := helper.TimeframeToDuration(r.cfg.Timeframe)
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	log.Printf("[RUNNER] ▶️ старт RSI-стратегии %s %s", r.cfg.Symbol, r.cfg.Timeframe)
	r.sendf("🚀 RSI-бот запущен: %s %s (period=%d, OS=%.0f, OB=%.0f)",
		r.cfg.Symbol, r.cfg.Timeframe, r.cfg.RSIPeriod, r.cfg.RSIOversold, r.cfg.RSIOverbought)

	for {
		start := r.now()
		r.runCycle(ctx)

		// сон до закрытия следующей свечи, но не меньше MinSleep
		sleep := interval - (r.now().Sub(start) % interval)
		if sleep < r.cfg.MinSleep {
			sleep = r.cfg.MinSleep
		}

		select {
		case <-ctx.Done():
			log.Printf("[RUNNER] ⏹ остановка %s", r.cfg.Symbol)
			r.sendf("⏹ RSI-бот остановлен: %s", r.cfg.Symbol)
			return
		case <-time.After(sleep):
		}
	}
}

// runCycle — одна итерация. Ошибки данных = пропуск цикла, retry на следующем.
func (r *Runner) runCycle(ctx context.Context) {
	bars, err := r.prices.FetchCandles(ctx, r.cfg.Symbol, r.cfg.Timeframe, r.cfg.CandleLimit)
	if err != nil {
		log.Printf("[DATA] %s: ошибка получения свечей: %v", r.cfg.Symbol, err)
		return
	}
	if len(bars) == 0 {
		log.Printf("[DATA] %s: пустое окно, пропуск цикла", r.cfg.Symbol)
		return
	}

	if r.state != nil {
		r.state.TouchCycle(r.now())
		r.state.SetReady(true)
	}

	sig := r.engine.Evaluate(bars)

	r.mu.Lock()
	r.lastRSI = sig.RSI
	r.mu.Unlock()

	log.Printf("[EVAL] %s %s — %s", r.cfg.Symbol, sig.Reason, sideOrHold(sig.Side))

	r.executeSignal(ctx, sig)
	r.checkPositionLimits(ctx)
}

func sideOrHold(s models.Side) string {
	if s == models.SideHold {
		return "HOLD"
	}
	return string(s)
}

// currentPrice: сперва WS-кэш, потом REST-тикер.
func (r *Runner) currentPrice(ctx context.Context) (float64, error) {
	if r.cache != nil {
		if px, ok := r.cache.Last(r.cfg.Symbol); ok && px > 0 {
			return px, nil
		}
	}
	return r.prices.LastPrice(ctx, r.cfg.Symbol)
}

// CurrentPosition — снапшот для Telegram-команд.
func (r *Runner) CurrentPosition() (models.Position, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.position == nil {
		return models.Position{}, false
	}
	return *r.position, true
}

func (r *Runner) LastRSI() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRSI
}
