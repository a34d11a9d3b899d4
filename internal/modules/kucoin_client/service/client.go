package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"rsi_bot/internal/modules/config"
)

const baseURL = "https://api.kucoin.com"

type Client struct {
	http *http.Client

	apiKey    string
	apiSecret string
	passph    string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		http:      &http.Client{Timeout: 10 * time.Second},
		apiKey:    cfg.KuCoin.APIKey,
		apiSecret: cfg.KuCoin.APISecret,
		passph:    cfg.KuCoin.Passphrase,
	}
}

// sign — base64(HMAC-SHA256(secret, ts+METHOD+path+body)), KC-API-KEY-VERSION=2.
func (c *Client) sign(ts, method, requestPath, body string) string {
	h := hmac.New(sha256.New, []byte(c.apiSecret))
	h.Write([]byte(ts + method + requestPath + body))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// у v2-ключей passphrase тоже подписывается секретом
func (c *Client) signedPassphrase() string {
	h := hmac.New(sha256.New, []byte(c.apiSecret))
	h.Write([]byte(c.passph))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (c *Client) authHeaders(req *http.Request, ts, signature string) {
	req.Header.Set("KC-API-KEY", c.apiKey)
	req.Header.Set("KC-API-SIGN", signature)
	req.Header.Set("KC-API-TIMESTAMP", ts)
	req.Header.Set("KC-API-PASSPHRASE", c.signedPassphrase())
	req.Header.Set("KC-API-KEY-VERSION", "2")
	req.Header.Set("Content-Type", "application/json")
}

func nowMillis() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func formatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}
