package util

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"

	// values above this are treated as unix milliseconds
	unixMillisThreshold = 1e11
)

var ErrInvalidTimestamp = errors.New("util: invalid timestamp")

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	DateTimeFormat,
	DateFormat,
}

func MillisecondsToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// ParseTimestamp accepts RFC3339, "2006-01-02 15:04:05", "2006-01-02",
// unix seconds or unix milliseconds, as a JSON string or number.
func ParseTimestamp(raw json.RawMessage) (time.Time, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return time.Time{}, ErrInvalidTimestamp
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if n > unixMillisThreshold {
			return MillisecondsToTime(int64(n)), nil
		}
		return time.Unix(int64(n), 0).UTC(), nil
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}
