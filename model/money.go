package model

import "github.com/shopspring/decimal"

// MinorUnits is an amount in minor currency units (for PLN: grosze).
type MinorUnits int64

// Decimal returns the amount in major units, e.g. 12345 -> 123.45.
func (m MinorUnits) Decimal() decimal.Decimal { return decimal.New(int64(m), -2) }

// String renders the amount with two decimal places.
func (m MinorUnits) String() string { return m.Decimal().StringFixed(2) }

// MinorUnitsFromDecimal converts a major-unit amount, rounding half away from
// zero to the nearest minor unit.
func MinorUnitsFromDecimal(d decimal.Decimal) MinorUnits {
	return MinorUnits(d.Shift(2).Round(0).IntPart())
}

// Format renders an optional amount, using "-" for nil.
func Format(m *MinorUnits) string {
	if m == nil {
		return "-"
	}
	return m.String()
}
