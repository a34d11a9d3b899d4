package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// LastPrice — последняя цена сделки из level1-стакана.
func (c *Client) LastPrice(ctx context.Context, symbol string) (float64, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		baseURL+"/api/v1/market/orderbook/level1?symbol="+url.QueryEscape(symbol),
		nil,
	)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("http %d: %s", resp.StatusCode, string(b))
	}

	var payload struct {
		Code string `json:"code"`
		Msg  string `json:"msg"`
		Data struct {
			Price string `json:"price"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	if payload.Code != "200000" {
		return 0, fmt.Errorf("kucoin error %s: %s", payload.Code, payload.Msg)
	}

	px, err := strconv.ParseFloat(payload.Data.Price, 64)
	if err != nil || px <= 0 {
		return 0, fmt.Errorf("bad price %q: %v", payload.Data.Price, err)
	}
	return px, nil
}
