package conversion

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize converts a raw percent value, as users and imported data
// actually enter it, into a canonical fraction:
//
//	"62.5%" → 0.625    "50" → 0.5    50 → 0.5    0.5 → 0.5
//
// Bare numbers above 1 are read as percentages; 1 and below as already
// a fraction. A value that cannot be parsed means "no percent recorded"
// and yields nil, never an error.
func Normalize(raw any) *float64 {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if strings.HasSuffix(s, "%") {
			n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
			if err != nil {
				return nil
			}
			n /= 100
			return &n
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return fromNumber(n)
	case float64:
		return fromNumber(v)
	case float32:
		return fromNumber(float64(v))
	case int:
		return fromNumber(float64(v))
	case int64:
		return fromNumber(float64(v))
	}
	return nil
}

func fromNumber(n float64) *float64 {
	if n > 1 {
		n /= 100
	}
	return &n
}

// FormatPercent renders a canonical fraction for display: 0.625 → "62.50%".
func FormatPercent(frac float64) string {
	return fmt.Sprintf("%.2f%%", frac*100)
}

// FormatPercentPtr is FormatPercent for optional percents; nil renders
// as the empty string.
func FormatPercentPtr(frac *float64) string {
	if frac == nil {
		return ""
	}
	return FormatPercent(*frac)
}
