package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	intType = detail{
		typ: "int_type",
		msg: "Input should be a valid integer",
	}
	intParsing = detail{
		typ: "int_parsing",
		msg: "Input should be a valid integer, unable to parse string as an integer",
	}
	intFromFloat = detail{
		typ: "int_from_float",
		msg: "Input should be a valid integer, got a number with a fractional part",
	}
	intParsingSize = detail{
		typ: "int_parsing_size",
		msg: "Unable to parse input string as an integer, exceeded maximum size",
	}
	datetimeType = detail{
		typ: "datetime_type",
		msg: "Input should be a valid datetime",
	}
	datetimeParsing = detail{
		typ: "datetime_parsing",
		msg: "Input should be a valid datetime, unable to parse string as a datetime",
	}
)

// Форматы времени без зоны читаются как UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999-0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Числа по модулю больше unixMillisThreshold считаются миллисекундами, меньше - секундами.
const unixMillisThreshold = 2e10

// parseInt принимает целые числа JSON, дробные без дробной части (10.0) и строки с целым числом.
func parseInt(value any) (int64, *detail) {
	switch v := value.(type) {
	case json.Number:
		return parseNumber(v.String())
	case string:
		s := strings.TrimSpace(v)
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return n, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, &intParsingSize
		}
		return 0, &intParsing
	default:
		return 0, &intType
	}
}

func parseNumber(s string) (int64, *detail) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, &intParsingSize
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &intParsingSize
	}
	if f != math.Trunc(f) {
		return 0, &intFromFloat
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, &intParsingSize
	}
	return int64(f), nil
}

// parseTime принимает строку ISO 8601 или число секунд (миллисекунд) Unix.
func parseTime(value any) (time.Time, *detail) {
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		if strings.HasSuffix(s, "z") {
			s = strings.TrimSuffix(s, "z") + "Z"
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return parseUnix(json.Number(s))
		}
		return time.Time{}, &datetimeParsing
	case json.Number:
		return parseUnix(v)
	default:
		return time.Time{}, &datetimeType
	}
}

func parseUnix(n json.Number) (time.Time, *detail) {
	if v, err := n.Int64(); err == nil {
		if math.Abs(float64(v)) > unixMillisThreshold {
			return time.UnixMilli(v).UTC(), nil
		}
		return time.Unix(v, 0).UTC(), nil
	}

	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, &datetimeParsing
	}
	if math.Abs(f) > unixMillisThreshold {
		f /= 1000
	}
	if math.Abs(f) > math.MaxInt64/float64(time.Second) {
		return time.Time{}, &datetimeParsing
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(math.Round(frac*float64(time.Second)))).UTC(), nil
}
