// Package core provides money parsing and handling utilities.
//
// Amounts travel as shopspring decimals and are stored as integer cents.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.New(1, 13)

// ParseAmount parses a decimal string, accepting both dot (12.34) and comma
// (12,34) separators, and rounds half-up to cents.
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34
//	ParseAmount("12,345") -> 12.35
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	d = d.Round(2)
	if err := ValidateAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ValidateAmount requires 0 < amount < 10^13, matching DECIMAL(15,2).
func ValidateAmount(d decimal.Decimal) error {
	if !d.IsPositive() || d.GreaterThanOrEqual(maxAmount) {
		return ErrInvalidAmount
	}
	return nil
}

// AmountToCents converts an amount already rounded to two places.
func AmountToCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func CentsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
