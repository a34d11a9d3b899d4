package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandleRows_ReversesNewestFirst(t *testing.T) {
	// новые сверху, как отдаёт биржа
	rows := [][]string{
		{"1717250400", "0.52", "0.53", "0.54", "0.51", "1000", "525"},
		{"1717250100", "0.51", "0.52", "0.53", "0.50", "900", "470"},
		{"1717249800", "0.50", "0.51", "0.52", "0.49", "800", "410"},
	}

	bars := ParseCandleRows("XRP-USDT", "5m", rows)

	require.Len(t, bars, 3)
	assert.True(t, bars[0].Start.Before(bars[1].Start))
	assert.True(t, bars[1].Start.Before(bars[2].Start))

	// порядок полей: ts, open, close, high, low, volume
	oldest := bars[0]
	assert.Equal(t, 0.50, oldest.Open)
	assert.Equal(t, 0.51, oldest.Close)
	assert.Equal(t, 0.52, oldest.High)
	assert.Equal(t, 0.49, oldest.Low)
	assert.Equal(t, 800.0, oldest.Volume)
	assert.Equal(t, time.Unix(1717249800, 0), oldest.Start)
	assert.Equal(t, time.Unix(1717249800, 0).Add(5*time.Minute), oldest.End)
	assert.Equal(t, "XRP-USDT", oldest.Symbol)
}

func TestParseCandleRows_SkipsBadRows(t *testing.T) {
	rows := [][]string{
		{"1717250400", "0.52", "0.53", "0.54", "0.51", "1000", "525"},
		{"oops", "0.51", "0.52", "0.53", "0.50", "900", "470"}, // битый ts
		{"1717249800", "0.50", "x", "0.52", "0.49", "800"},     // битый close
		{"1717249500", "0.50", "0", "0.52", "0.49", "800"},     // нулевой close
		{"1717249200"}, // обрезанная строка
	}

	bars := ParseCandleRows("XRP-USDT", "5m", rows)

	require.Len(t, bars, 1)
	assert.Equal(t, 0.53, bars[0].Close)
}

func TestParseCandleRows_Empty(t *testing.T) {
	assert.Empty(t, ParseCandleRows("XRP-USDT", "5m", nil))
}
