package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rsi_bot/internal/modules/config"
	"rsi_bot/internal/modules/health/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	cfg := &config.Config{DefaultSymbol: "XRP-USDT"}
	state := service.NewState()
	srv := httptest.NewServer(NewMux(cfg, state))
	defer srv.Close()

	// живой всегда
	resp, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// не готов, пока не было ни одного цикла
	resp, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	state.TouchCycle(time.Now())
	state.SetReady(true)

	resp, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "XRP-USDT", body["symbol"])
	assert.Equal(t, true, body["ready"])
	assert.NotZero(t, body["lastCycleUnix"])
}
