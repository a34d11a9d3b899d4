package backtest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	data := "ts,open,high,low,close,volume\n" +
		"1717249800,0.50,0.52,0.49,0.51,800\n" +
		"1717250100,0.51,0.53,0.50,0.52,900\n" +
		"bad,row,x,y,z\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	bars, err := LoadCSV(path, "XRP-USDT", "5m")
	require.NoError(t, err)
	require.Len(t, bars, 2, "заголовок и битая строка пропускаются")

	assert.Equal(t, 0.51, bars[0].Close)
	assert.Equal(t, time.Unix(1717249800, 0).UTC(), bars[0].Start)
	assert.Equal(t, 5*time.Minute, bars[0].End.Sub(bars[0].Start))
	assert.Equal(t, "XRP-USDT", bars[0].Symbol)
}

func TestLoadCSV_EmptyFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("ts,open,high,low,close\n"), 0o644))

	_, err := LoadCSV(path, "XRP-USDT", "5m")
	assert.Error(t, err)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV("/no/such/file.csv", "XRP-USDT", "5m")
	assert.Error(t, err)
}
