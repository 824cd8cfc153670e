// Package money holds the numeric coercion and rounding rules shared by
// every component that touches amounts. Persisted decimal values may
// come back from the driver as strings, bytes or floats; Normalize
// folds all of them into a decimal, defaulting to zero instead of
// failing. Rounding to 2 places happens only when a value is emitted,
// never while accumulating.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize coerces a raw driver value into a decimal. Unparseable or
// nil input yields zero; it never returns an error.
func Normalize(raw interface{}) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case string:
		return parse(v)
	case []byte:
		return parse(string(v))
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int64:
		return decimal.NewFromInt(v)
	case int:
		return decimal.NewFromInt(int64(v))
	default:
		return decimal.Zero
	}
}

func parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 rounds to 2 decimal places, half away from zero. This is the
// single rounding rule used for every displayed amount.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Display returns the float value shown in JSON payloads, rounded to
// 2 decimal places.
func Display(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
