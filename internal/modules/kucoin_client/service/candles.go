package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"rsi_bot/internal/helper"
	"rsi_bot/internal/models"
)

// "5m" -> "5min" и т.п. (формат параметра type у KuCoin)
var timeframeTypes = map[string]string{
	"1m":  "1min",
	"3m":  "3min",
	"5m":  "5min",
	"15m": "15min",
	"30m": "30min",
	"1h":  "1hour",
	"4h":  "4hour",
	"1d":  "1day",
}

// FetchCandles тянет limit последних свечей и отдаёт их в хронологическом
// порядке. Пустой ответ — не ошибка: раннер сам решает пропустить цикл.
func (c *Client) FetchCandles(ctx context.Context, symbol, timeframe string, limit int) ([]models.CandleTick, error) {
	tfType, ok := timeframeTypes[timeframe]
	if !ok {
		return nil, fmt.Errorf("unsupported timeframe %q", timeframe)
	}

	tfDur := helper.TimeframeToDuration(timeframe)
	end := time.Now()
	start := end.Add(-time.Duration(limit+1) * tfDur)

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("type", tfType)
	q.Set("startAt", strconv.FormatInt(start.Unix(), 10))
	q.Set("endAt", strconv.FormatInt(end.Unix(), 10))

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		baseURL+"/api/v1/market/candles?"+q.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(b))
	}

	var payload struct {
		Code string     `json:"code"`
		Msg  string     `json:"msg"`
		Data [][]string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if payload.Code != "200000" {
		return nil, fmt.Errorf("kucoin error %s: %s", payload.Code, payload.Msg)
	}

	bars := ParseCandleRows(symbol, timeframe, payload.Data)
	if len(bars) > limit {
		bars = bars[len(bars)-limit:]
	}
	return bars, nil
}

// ParseCandleRows разбирает строки KuCoin:
// [ts(sec), open, close, high, low, volume, turnover], новые сверху.
// Непарсящиеся строки молча пропускаем.
func ParseCandleRows(symbol, timeframe string, rows [][]string) []models.CandleTick {
	tfDur := helper.TimeframeToDuration(timeframe)

	out := make([]models.CandleTick, 0, len(rows))
	// идём с конца: KuCoin отдаёт новейшие первыми
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		if len(row) < 6 {
			continue
		}

		tsSec, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			continue
		}
		start := time.Unix(tsSec, 0)
		end := start
		if tfDur > 0 {
			end = start.Add(tfDur)
		}

		open, err1 := strconv.ParseFloat(row[1], 64)
		closep, err2 := strconv.ParseFloat(row[2], 64)
		high, err3 := strconv.ParseFloat(row[3], 64)
		low, err4 := strconv.ParseFloat(row[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		if closep <= 0 {
			continue
		}

		var vol float64
		if len(row) >= 6 {
			vol, _ = strconv.ParseFloat(row[5], 64)
		}

		out = append(out, models.CandleTick{
			Symbol:       symbol,
			Open:         open,
			High:         high,
			Low:          low,
			Close:        closep,
			Volume:       vol,
			Start:        start,
			End:          end,
			TimeframeRaw: timeframe,
		})
	}
	return out
}
