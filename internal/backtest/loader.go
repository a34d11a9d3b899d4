package backtest

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"rsi_bot/internal/helper"
	"rsi_bot/internal/models"

	"github.com/pkg/errors"
)

// LoadCSV читает бары из файла ts,open,high,low,close,volume
// (unix-секунды, по возрастанию). Строка заголовка допускается.
func LoadCSV(path, symbol, timeframe string) ([]models.CandleTick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open csv")
	}
	defer func() {
		_ = f.Close()
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}

	dur := helper.TimeframeToDuration(timeframe)
	bars := make([]models.CandleTick, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		ts, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			continue // заголовок или мусор
		}
		openp, err1 := strconv.ParseFloat(row[1], 64)
		high, err2 := strconv.ParseFloat(row[2], 64)
		low, err3 := strconv.ParseFloat(row[3], 64)
		closep, err4 := strconv.ParseFloat(row[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || closep <= 0 {
			continue
		}
		var vol float64
		if len(row) > 5 {
			vol, _ = strconv.ParseFloat(row[5], 64)
		}

		start := time.Unix(ts, 0).UTC()
		bars = append(bars, models.CandleTick{
			Symbol:       symbol,
			Open:         openp,
			High:         high,
			Low:          low,
			Close:        closep,
			Volume:       vol,
			Start:        start,
			End:          start.Add(dur),
			TimeframeRaw: timeframe,
		})
	}

	if len(bars) == 0 {
		return nil, errors.New("no bars in csv")
	}
	return bars, nil
}
