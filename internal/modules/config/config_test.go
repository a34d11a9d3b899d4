package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "values_local.yaml"), []byte(body), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestNewConfig_DefaultsAndYaml(t *testing.T) {
	writeConfig(t, `
telegram:
  token: "tok-1"
  chat_id: 42
kucoin:
  api_key: "k"
health:
  addr: ""
use_ws_ticker: true
`)

	cfg, err := NewConfig()
	require.NoError(t, err)

	// из yaml
	assert.Equal(t, "tok-1", cfg.Telegram.Token)
	assert.Equal(t, int64(42), cfg.Telegram.ChatID)
	assert.Equal(t, "k", cfg.KuCoin.APIKey)
	assert.True(t, cfg.UseWSTicker)

	// дефолты
	assert.Equal(t, "XRP-USDT", cfg.DefaultSymbol)
	assert.Equal(t, "5m", cfg.DefaultTimeframe)
	assert.Equal(t, 14, cfg.DefaultRSIPeriod)
	assert.Equal(t, 70.0, cfg.DefaultRSIOverbought)
	assert.Equal(t, 30.0, cfg.DefaultRSIOversold)
	assert.Equal(t, 0.02, cfg.DefaultStopLoss)
	assert.Equal(t, 0.05, cfg.DefaultTakeProfit)
	assert.Equal(t, 0.1, cfg.DefaultRiskPct)
	assert.Equal(t, 4*time.Hour, cfg.DefaultMaxHoldTime)
	assert.Equal(t, 100, cfg.DefaultCandleLimit)
	assert.Equal(t, 10*time.Second, cfg.DefaultMinSleep)
	assert.Equal(t, ":8080", cfg.Health.Addr, "пустой addr заменяется дефолтом")
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	writeConfig(t, "telegram:\n  token: \"\"\n")

	t.Setenv("SYMBOL", "BTC-USDT")
	t.Setenv("RSI_PERIOD", "21")
	t.Setenv("STOP_LOSS", "0.03")
	t.Setenv("MAX_HOLD_TIME", "2h")
	t.Setenv("TELEGRAM_TOKEN", "env-tok")
	t.Setenv("DATABASE_DSN", "postgres://x")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "BTC-USDT", cfg.DefaultSymbol)
	assert.Equal(t, 21, cfg.DefaultRSIPeriod)
	assert.Equal(t, 0.03, cfg.DefaultStopLoss)
	assert.Equal(t, 2*time.Hour, cfg.DefaultMaxHoldTime)
	assert.Equal(t, "env-tok", cfg.Telegram.Token)
	assert.Equal(t, "postgres://x", cfg.DB)
}
