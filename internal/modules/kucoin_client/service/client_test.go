package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"testing"

	"rsi_bot/internal/modules/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *Client {
	cfg := &config.Config{}
	cfg.KuCoin.APIKey = "key-123"
	cfg.KuCoin.APISecret = "secret-456"
	cfg.KuCoin.Passphrase = "phrase-789"
	return NewClient(cfg)
}

func TestSign_MatchesHMAC(t *testing.T) {
	c := testClient()

	got := c.sign("1717250400000", "GET", "/api/v1/accounts", "")

	h := hmac.New(sha256.New, []byte("secret-456"))
	h.Write([]byte("1717250400000GET/api/v1/accounts"))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))

	assert.Equal(t, want, got)
}

func TestSign_BodyChangesSignature(t *testing.T) {
	c := testClient()

	a := c.sign("1", "POST", "/api/v1/orders", `{"side":"buy"}`)
	b := c.sign("1", "POST", "/api/v1/orders", `{"side":"sell"}`)

	assert.NotEqual(t, a, b)
}

func TestAuthHeaders_V2(t *testing.T) {
	c := testClient()
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/accounts", nil)
	require.NoError(t, err)

	c.authHeaders(req, "1717250400000", "sig")

	assert.Equal(t, "key-123", req.Header.Get("KC-API-KEY"))
	assert.Equal(t, "sig", req.Header.Get("KC-API-SIGN"))
	assert.Equal(t, "1717250400000", req.Header.Get("KC-API-TIMESTAMP"))
	assert.Equal(t, "2", req.Header.Get("KC-API-KEY-VERSION"))

	// passphrase у v2 тоже подписан, в открытом виде не уходит
	assert.NotEqual(t, "phrase-789", req.Header.Get("KC-API-PASSPHRASE"))
	assert.NotEmpty(t, req.Header.Get("KC-API-PASSPHRASE"))
}

func TestFormatSize_NoTrailingZeros(t *testing.T) {
	assert.Equal(t, "50", formatSize(50))
	assert.Equal(t, "0.05", formatSize(0.05))
	assert.Equal(t, "12.345", formatSize(12.345))
}
