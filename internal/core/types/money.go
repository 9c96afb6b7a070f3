// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// DefaultCurrency is applied when a requisition group has no currency configured.
const DefaultCurrency = "VND"

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// MoneyPtr returns a pointer to m. Nil pointers mean "no value"
// (no quote, no computed amount) throughout the comparison engine.
func MoneyPtr(m Money) *Money {
	return &m
}

// MustMoneyPtr creates a *Money from a string, panics on error.
// Use only for constants and tests.
func MustMoneyPtr(s string) *Money {
	m := MustMoney(s)
	return &m
}

// ValueOrZero dereferences p, treating nil as zero.
// Quantities default to zero when unset; prices do NOT use this
// (a missing price is absence, not zero).
func ValueOrZero(p *Money) Money {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

// RoundPercent rounds a percentage to 2 decimal places using round-half-up.
// decimal.Round implements half-up rounding (0.005 -> 0.01).
func RoundPercent(m Money) Money {
	return m.Round(2)
}
