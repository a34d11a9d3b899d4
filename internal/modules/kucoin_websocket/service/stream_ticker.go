package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"
)

// Start стримит ticker по символу и держит кэш последней цены.
// Реконнект вечный: упали — секунда паузы и заново.
func (c *Client) Start(ctx context.Context, symbol string) {
	topic := "/market/ticker:" + symbol

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		endpoint, err := c.bulletEndpoint(ctx)
		if err != nil {
			log.Printf("[WS] bullet error: %v", err)
			time.Sleep(time.Second)
			continue
		}

		log.Printf("[WS] connect %s", topic)
		conn, _, err := c.wsDialer.Dial(endpoint, nil)
		if err != nil {
			log.Printf("[WS] dial error: %v", err)
			time.Sleep(time.Second)
			continue
		}

		sub := map[string]any{
			"id":       strconv.FormatInt(time.Now().UnixNano(), 10),
			"type":     "subscribe",
			"topic":    topic,
			"response": true,
		}
		if err := conn.WriteJSON(sub); err != nil {
			log.Printf("[WS] subscribe error: %v", err)
			_ = conn.Close()
			continue
		}

		if c.state != nil {
			c.state.SetWSConnected(true)
		}

		// keepalive ping каждые 20s — иначе KuCoin закрывает соединение
		stopPing := make(chan struct{})
		go func() {
			t := time.NewTicker(20 * time.Second)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-stopPing:
					return
				case <-t.C:
					_ = conn.WriteJSON(map[string]string{
						"id":   strconv.FormatInt(time.Now().UnixNano(), 10),
						"type": "ping",
					})
				}
			}
		}()

		// основной read-loop
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				log.Printf("[WS] read error: %v", err)
				_ = conn.Close()
				break
			}

			var frame struct {
				Type  string `json:"type"`
				Topic string `json:"topic"`
				Data  struct {
					Price string `json:"price"`
				} `json:"data"`
			}
			if err := json.Unmarshal(msg, &frame); err != nil {
				continue
			}
			if frame.Type != "message" || frame.Topic != topic {
				continue
			}

			px, err := strconv.ParseFloat(frame.Data.Price, 64)
			if err != nil || px <= 0 {
				continue
			}
			c.setLast(symbol, px)
		}

		close(stopPing)
		if c.state != nil {
			c.state.SetWSConnected(false)
		}

		select {
		case <-ctx.Done():
			return
		default:
			time.Sleep(time.Second)
		}
	}
}
