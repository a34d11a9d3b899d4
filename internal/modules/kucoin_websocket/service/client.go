package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"rsi_bot/internal/modules/config"
	healthsvc "rsi_bot/internal/modules/health/service"

	"github.com/gorilla/websocket"
)

// Client держит кэш последних цен из публичного WS KuCoin.
type Client struct {
	cfg   *config.Config
	state *healthsvc.State

	http     *http.Client
	wsDialer *websocket.Dialer

	mu   sync.RWMutex
	last map[string]float64
}

func NewClient(cfg *config.Config, state *healthsvc.State) *Client {
	return &Client{
		cfg:      cfg,
		state:    state,
		http:     &http.Client{Timeout: 10 * time.Second},
		wsDialer: &websocket.Dialer{},
		last:     make(map[string]float64),
	}
}

// Last — последняя цена по символу из стрима; false пока тиков не было.
func (c *Client) Last(symbol string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	px, ok := c.last[symbol]
	return px, ok
}

func (c *Client) setLast(symbol string, px float64) {
	c.mu.Lock()
	c.last[symbol] = px
	c.mu.Unlock()
}

// bulletEndpoint — handshake публичного WS: POST bullet-public отдаёт
// токен и адрес сервера.
func (c *Client) bulletEndpoint(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		"https://api.kucoin.com/api/v1/bullet-public",
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("http %d: %s", resp.StatusCode, string(b))
	}

	var payload struct {
		Code string `json:"code"`
		Data struct {
			Token           string `json:"token"`
			InstanceServers []struct {
				Endpoint string `json:"endpoint"`
			} `json:"instanceServers"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if payload.Code != "200000" || len(payload.Data.InstanceServers) == 0 {
		return "", fmt.Errorf("bullet-public: code=%s servers=%d",
			payload.Code, len(payload.Data.InstanceServers))
	}

	return fmt.Sprintf("%s?token=%s&connectId=%d",
		payload.Data.InstanceServers[0].Endpoint,
		payload.Data.Token,
		time.Now().UnixNano(),
	), nil
}
