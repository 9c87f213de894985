package util

import (
	"time"

	"github.com/shopspring/decimal"
)

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func StringPointer(s string) *string {
	return &s
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

// NullDecimal converts an optional db column into the scorer's optional type.
func NullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func NullDecimalPointer(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}
