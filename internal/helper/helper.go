package helper

import (
	"strings"
	"time"
)

func NormTF(raw string) string {
	s := strings.TrimSpace(strings.ToLower(raw))
	s = strings.TrimSuffix(s, "in") // "5min" -> "5m"
	switch s {
	case "60m", "1h", "1hour":
		return "1h"
	case "4hour":
		return "4h"
	case "1day":
		return "1d"
	default:
		return s
	}
}

// TimeframeToDuration — "5m" -> 5 минут; 0 для неизвестного таймфрейма.
func TimeframeToDuration(tf string) time.Duration {
	switch NormTF(tf) {
	case "1m":
		return time.Minute
	case "3m":
		return 3 * time.Minute
	case "5m":
		return 5 * time.Minute
	case "15m":
		return 15 * time.Minute
	case "30m":
		return 30 * time.Minute
	case "1h":
		return time.Hour
	case "4h":
		return 4 * time.Hour
	case "1d":
		return 24 * time.Hour
	default:
		return 0
	}
}
