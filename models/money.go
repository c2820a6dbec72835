package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// minorUnitExp is the exponent between the major and minor currency unit (rupee/paise).
const minorUnitExp = 2

// Money is an amount in minor currency units. It encodes to JSON as a
// major-unit number with two decimals, e.g. 3540.00.
type Money int64

// MaxMoney is the largest representable amount. Sums saturate here.
const MaxMoney = Money(math.MaxInt64)

// MoneyFromDecimal converts a major-unit decimal into Money, rounding half
// away from zero to the nearest minor unit. ok is false when the rounded
// value does not fit in Money.
func MoneyFromDecimal(d decimal.Decimal) (m Money, ok bool) {
	minor := d.Shift(minorUnitExp).Round(0)
	if !minor.BigInt().IsInt64() {
		return 0, false
	}
	return Money(minor.IntPart()), true
}

// Add returns m + o, clamped to the int64 range instead of wrapping.
func (m Money) Add(o Money) Money {
	sum := m + o
	switch {
	case o > 0 && sum < m:
		return MaxMoney
	case o < 0 && sum > m:
		return Money(math.MinInt64)
	}
	return sum
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -minorUnitExp)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(minorUnitExp)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid money amount %q", raw)
	}
	v, ok := MoneyFromDecimal(d)
	if !ok {
		return fmt.Errorf("money amount %q out of range", raw)
	}
	*m = v
	return nil
}
