package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
	chatTelegramENV   = "TELEGRAM_CHAT_ID"
	databaseDSN       = "DATABASE_DSN"
)

// Config ...
type Config struct {
	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
	DB string `yaml:"db_dsn"`

	KuCoin struct {
		APIKey     string `yaml:"api_key"`
		APISecret  string `yaml:"api_secret"`
		Passphrase string `yaml:"passphrase"`
	} `yaml:"kucoin"`

	Health struct {
		Addr string `yaml:"addr"`
	} `yaml:"health"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`

	// стримить last-price по WS; при false раннер ходит в REST-тикер
	UseWSTicker bool `yaml:"use_ws_ticker"`

	// Дефолты стратегии
	DefaultSymbol    string
	DefaultTimeframe string
	DefaultQuoteCcy  string

	DefaultRSIPeriod       int
	DefaultSmoothingWindow int
	DefaultRSIOverbought   float64
	DefaultRSIOversold     float64

	// Риск. Доли, не проценты: STOP_LOSS=0.02 => 2%
	DefaultStopLoss    float64
	DefaultTakeProfit  float64
	DefaultRiskPct     float64
	DefaultMaxHoldTime time.Duration

	DefaultCandleLimit int
	DefaultMinSleep    time.Duration

	DefaultStrategy string
}

func NewConfig() (*Config, error) {

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		log.Fatalf("Failed to open config file: %v", err)
	}

	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	config := Config{
		DefaultSymbol:    getenvDefault("SYMBOL", "XRP-USDT"),
		DefaultTimeframe: getenvDefault("TIMEFRAME", "5m"),
		DefaultQuoteCcy:  getenvDefault("QUOTE_CCY", "USDT"),

		DefaultRSIPeriod:       intFromEnv("RSI_PERIOD", 14),
		DefaultSmoothingWindow: intFromEnv("SMOOTHING_WINDOW", 14),
		DefaultRSIOverbought:   floatFromEnv("RSI_OVERBOUGHT", 70),
		DefaultRSIOversold:     floatFromEnv("RSI_OVERSOLD", 30),

		DefaultStopLoss:    floatFromEnv("STOP_LOSS", 0.02),
		DefaultTakeProfit:  floatFromEnv("TAKE_PROFIT", 0.05),
		DefaultRiskPct:     floatFromEnv("RISK_PCT", 0.1),
		DefaultMaxHoldTime: durationFromEnv("MAX_HOLD_TIME", "4h"),

		DefaultCandleLimit: intFromEnv("CANDLE_LIMIT", 100),
		DefaultMinSleep:    durationFromEnv("MIN_SLEEP", "10s"),

		DefaultStrategy: getenvDefault("STRATEGY", "rsi"),
	}
	err = decoder.Decode(&config)
	if err != nil {
		log.Fatalf("Failed to decode config file: %v", err)
	}

	token := os.Getenv(tokenTelegramENV)
	if token != "" {
		config.Telegram.Token = token
	}
	if v := os.Getenv(chatTelegramENV); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Telegram.ChatID = id
		}
	}

	dsn := os.Getenv(databaseDSN)
	if dsn != "" {
		config.DB = dsn
	}

	if config.Health.Addr == "" {
		config.Health.Addr = ":8080"
	}

	return &config, nil
}

func getenvRequired(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("env %s is required", key))
	}
	return v
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatFromEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationFromEnv(key, def string) time.Duration {
	val := getenvDefault(key, def)
	d, err := time.ParseDuration(val)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}
