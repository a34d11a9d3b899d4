package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// MarketBuy — рыночная покупка size базовой монеты. Возвращает orderId.
func (c *Client) MarketBuy(ctx context.Context, symbol string, size float64) (string, error) {
	return c.placeMarket(ctx, symbol, "buy", size)
}

// MarketSell — рыночная продажа size базовой монеты.
func (c *Client) MarketSell(ctx context.Context, symbol string, size float64) (string, error) {
	return c.placeMarket(ctx, symbol, "sell", size)
}

func (c *Client) placeMarket(ctx context.Context, symbol, side string, size float64) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("placeMarket: size <= 0")
	}

	body := map[string]string{
		"clientOid": fmt.Sprintf("%d", time.Now().UnixNano()),
		"symbol":    symbol,
		"side":      side,
		"type":      "market",
		"size":      formatSize(size),
	}

	payload, err := sonic.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("placeMarket marshal: %w", err)
	}

	const requestPath = "/api/v1/orders"

	ts := nowMillis()
	sign := c.sign(ts, http.MethodPost, requestPath, string(payload))

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		baseURL+requestPath,
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", fmt.Errorf("placeMarket new request: %w", err)
	}
	c.authHeaders(req, ts, sign)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("placeMarket do: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("placeMarket http %d: %s", resp.StatusCode, string(data))
	}

	var r struct {
		Code string `json:"code"`
		Msg  string `json:"msg"`
		Data struct {
			OrderID string `json:"orderId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return "", fmt.Errorf("placeMarket decode: %w; body=%s", err, string(data))
	}

	if r.Code != "200000" {
		return "", fmt.Errorf("placeMarket rejected: code=%s msg=%s RAW=%s", r.Code, r.Msg, string(data))
	}
	if r.Data.OrderID == "" {
		return "", fmt.Errorf("placeMarket: empty orderId RAW=%s", string(data))
	}

	return r.Data.OrderID, nil
}
