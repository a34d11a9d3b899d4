package main

import (
	"fmt"
	"os"
	"time"

	"rsi_bot/internal/backtest"
	"rsi_bot/internal/models"
	"rsi_bot/internal/modules/strategy/service"

	"github.com/spf13/viper"
)

// Прогон RSI-стратегии по CSV-истории:
//
//	backtest <bars.csv>
//
// Параметры через env (BT_SYMBOL, BT_RSI_PERIOD, ...) или configs/backtest.yaml.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: backtest <bars.csv>")
		os.Exit(2)
	}
	csvPath := os.Args[1]

	viper.SetEnvPrefix("BT")
	viper.AutomaticEnv()

	viper.SetDefault("symbol", "XRP-USDT")
	viper.SetDefault("timeframe", "5m")
	viper.SetDefault("rsi_period", 14)
	viper.SetDefault("rsi_overbought", 70.0)
	viper.SetDefault("rsi_oversold", 30.0)
	viper.SetDefault("stop_loss", 0.02)
	viper.SetDefault("take_profit", 0.05)
	viper.SetDefault("risk_pct", 0.1)
	viper.SetDefault("max_hold_time", "4h")
	viper.SetDefault("candle_limit", 100)
	viper.SetDefault("balance", 10000.0)

	viper.SetConfigName("backtest")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("configs")
	if err := viper.ReadInConfig(); err != nil {
		// конфиг опционален, env и дефолтов достаточно
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("read config: %w", err))
		}
	}

	maxHold, err := time.ParseDuration(viper.GetString("max_hold_time"))
	if err != nil {
		panic(fmt.Errorf("parse max_hold_time: %w", err))
	}

	cfg := &models.TradingSettings{
		Symbol:          viper.GetString("symbol"),
		Timeframe:       viper.GetString("timeframe"),
		QuoteCcy:        "USDT",
		RSIPeriod:       viper.GetInt("rsi_period"),
		SmoothingWindow: viper.GetInt("rsi_period"),
		RSIOverbought:   viper.GetFloat64("rsi_overbought"),
		RSIOversold:     viper.GetFloat64("rsi_oversold"),
		StopLoss:        viper.GetFloat64("stop_loss"),
		TakeProfit:      viper.GetFloat64("take_profit"),
		RiskPct:         viper.GetFloat64("risk_pct"),
		MaxHoldTime:     maxHold,
		CandleLimit:     viper.GetInt("candle_limit"),
		Strategy:        models.StrategyRSI,
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Errorf("settings: %w", err))
	}

	bars, err := backtest.LoadCSV(csvPath, cfg.Symbol, cfg.Timeframe)
	if err != nil {
		panic(fmt.Errorf("load bars: %w", err))
	}
	fmt.Printf("Баров: %d (%s %s)\n", len(bars), cfg.Symbol, cfg.Timeframe)

	res := backtest.NewEngine(cfg, service.NewRSI(cfg)).Run(bars, viper.GetFloat64("balance"))

	stats := res.Calculate()
	stats.MarkTrend(models.Closes(bars))
	stats.Print()
}
