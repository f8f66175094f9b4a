package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
	time.DateOnly,
}

// Timestamp момент времени транзакции. Поле служит только для показа, поэтому разбор
// никогда не завершается ошибкой: null дает нулевое время, число читается как Unix время
// (в секундах или миллисекундах), строка в неизвестном формате сохраняется в Raw.
type Timestamp struct {
	time.Time
	Raw string
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		if epoch, err := strconv.ParseFloat(trimmed, 64); err == nil {
			t.Time = fromEpoch(epoch)
			return nil
		}
		t.Raw = trimmed
		return nil
	}

	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	if epoch, err := strconv.ParseFloat(s, 64); err == nil {
		t.Time = fromEpoch(epoch)
		return nil
	}
	t.Raw = s
	return nil
}

// MarshalJSON отдает RFC 3339, исходную строку для нераспознанного значения или null.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	switch {
	case !t.IsZero():
		return json.Marshal(t.Format(time.RFC3339))
	case t.Raw != "":
		return json.Marshal(t.Raw)
	default:
		return []byte("null"), nil
	}
}

// String форматирует время для показа.
func (t Timestamp) String() string {
	switch {
	case !t.IsZero():
		return t.Format(time.DateTime)
	default:
		return t.Raw
	}
}

// epochMillisThreshold значения больше считаются миллисекундами.
const epochMillisThreshold = 1e11

func fromEpoch(v float64) time.Time {
	if math.Abs(v) > epochMillisThreshold {
		v /= 1000
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

// RawTransaction транзакция в том виде, в котором ее отдает сервер (суммы в минорных единицах).
type RawTransaction struct {
	TID             string    `json:"tid"`
	ShopName        *string   `json:"shop_name"`
	PerformedAt     Timestamp `json:"performed_at"`
	TotalCost       int64     `json:"total_cost"`
	PointsAllocated int64     `json:"points_allocated"`
}

// TransactionsResponse тело ответа GET /user/transactions.
type TransactionsResponse struct {
	Transactions []RawTransaction `json:"transactions"`
}

// Transaction транзакция после нормализации, суммы в отображаемых единицах.
type Transaction struct {
	TID             string    `json:"tid"`
	ShopName        *string   `json:"shop_name"`
	PerformedAt     Timestamp `json:"performed_at"`
	TotalCost       Amount    `json:"total_cost"`
	PointsAllocated Amount    `json:"points_allocated"`
}
