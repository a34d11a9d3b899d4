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

// Balance — торговый счёт по одной валюте.
type Balance struct {
	Total float64
	Free  float64
	Holds float64
}

// FreeBalance — доступный остаток торгового счёта.
func (c *Client) FreeBalance(ctx context.Context, ccy string) (float64, error) {
	b, err := c.TradeBalance(ctx, ccy)
	if err != nil {
		return 0, err
	}
	return b.Free, nil
}

// TradeBalance отдаёт total/free/holds (для /balance в Telegram).
func (c *Client) TradeBalance(ctx context.Context, ccy string) (Balance, error) {
	q := url.Values{}
	q.Set("currency", ccy)
	q.Set("type", "trade")
	requestPath := "/api/v1/accounts?" + q.Encode()

	ts := nowMillis()
	sign := c.sign(ts, http.MethodGet, requestPath, "")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+requestPath, nil)
	if err != nil {
		return Balance{}, fmt.Errorf("build request: %w", err)
	}
	c.authHeaders(req, ts, sign)

	resp, err := c.http.Do(req)
	if err != nil {
		return Balance{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return Balance{}, fmt.Errorf("http %d: %s", resp.StatusCode, string(b))
	}

	var payload struct {
		Code string `json:"code"`
		Msg  string `json:"msg"`
		Data []struct {
			Currency  string `json:"currency"`
			Balance   string `json:"balance"`
			Available string `json:"available"`
			Holds     string `json:"holds"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Balance{}, fmt.Errorf("decode: %w", err)
	}
	if payload.Code != "200000" {
		return Balance{}, fmt.Errorf("kucoin error %s: %s", payload.Code, payload.Msg)
	}

	// аккаунтов типа trade по валюте может быть несколько — суммируем
	var out Balance
	for _, a := range payload.Data {
		total, _ := strconv.ParseFloat(a.Balance, 64)
		free, _ := strconv.ParseFloat(a.Available, 64)
		holds, _ := strconv.ParseFloat(a.Holds, 64)
		out.Total += total
		out.Free += free
		out.Holds += holds
	}
	return out, nil
}
