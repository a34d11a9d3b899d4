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

// MinOrderSize — минимальный размер ордера в базовой монете (baseMinSize).
func (c *Client) MinOrderSize(ctx context.Context, symbol string) (float64, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		baseURL+"/api/v2/symbols/"+url.PathEscape(symbol),
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
			Symbol        string `json:"symbol"`
			BaseMinSize   string `json:"baseMinSize"`
			BaseIncrement string `json:"baseIncrement"`
			EnableTrading bool   `json:"enableTrading"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	if payload.Code != "200000" {
		return 0, fmt.Errorf("kucoin error %s: %s", payload.Code, payload.Msg)
	}
	if !payload.Data.EnableTrading {
		return 0, fmt.Errorf("symbol %s not trading", symbol)
	}

	minSz, err := strconv.ParseFloat(payload.Data.BaseMinSize, 64)
	if err != nil || minSz <= 0 {
		return 0, fmt.Errorf("baseMinSize parse: %v (%q)", err, payload.Data.BaseMinSize)
	}
	return minSz, nil
}
