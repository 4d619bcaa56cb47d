// Package money implements the ledger's fixed-point monetary value, scaled
// to exactly two fractional digits. Every amount that touches the ledger
// flows through this type; storage columns are NUMERIC(18,2) and the wire
// format is always the 2-decimal string produced by String().
package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an immutable fixed-point decimal value with 2 fractional digits.
// The zero value is R$0.00 and is safe to use.
type Money struct {
	d decimal.Decimal
}

// Zero is the additive identity.
var Zero = Money{d: decimal.Zero}

// New builds a Money from a decimal.Decimal, rounding half-up to 2 places.
func New(d decimal.Decimal) Money {
	return Money{d: d.Round(2)}
}

// NewFromString parses a decimal string ("10.00", "-5", "1,000.00" is
// rejected — no thousands separators) into a Money value.
func NewFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}

	return New(d), nil
}

// MustFromString is NewFromString but panics on a malformed literal; reserved
// for compile-time-known constants (tests, seed data), never request input.
func MustFromString(s string) Money {
	m, err := NewFromString(s)
	if err != nil {
		panic(err)
	}

	return m
}

// NewFromInt builds a Money from a whole-unit integer (e.g. 10 -> R$10.00).
func NewFromInt(whole int64) Money {
	return Money{d: decimal.NewFromInt(whole)}
}

// NewFromMinor builds a Money from an integer minor-unit (cents) amount.
func NewFromMinor(cents int64) Money {
	return Money{d: decimal.New(cents, -2)}
}

// Minor returns the value as an integer number of cents. Panics never occur;
// values are always scaled to 2 digits by construction.
func (m Money) Minor() int64 {
	return m.d.Shift(2).IntPart()
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return New(m.d.Add(other.d))
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return New(m.d.Sub(other.d))
}

// Neg returns -m.
func (m Money) Neg() Money {
	return New(m.d.Neg())
}

// Cmp compares m to other: -1, 0, or 1.
func (m Money) Cmp(other Money) int {
	return m.d.Cmp(other.d)
}

// IsZero reports whether m == 0.
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.d.Cmp(other.d) >= 0
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.d.Cmp(other.d) < 0
}

// String renders the canonical 2-decimal form, e.g. "1000.00" or "-5.00".
// This is the exact representation fed into the hash-chain digest, so it
// must never change shape between releases.
func (m Money) String() string {
	return m.d.StringFixed(2)
}

// Sum adds a slice of Money values, starting from Zero.
func Sum(values ...Money) Money {
	total := Zero
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}

// Value implements driver.Valuer so Money can be written directly as a
// NUMERIC(18,2) column via database/sql.
func (m Money) Value() (driver.Value, error) {
	return m.d.StringFixed(2), nil
}

// MarshalJSON renders Money as a JSON string ("10.00"), matching the
// hash-chain's canonical 2-decimal form instead of a float that could lose
// precision over the wire.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string ("10.00") or a bare JSON
// number (10.00) for request payload leniency.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := NewFromString(s)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Scan implements sql.Scanner so Money can be read directly from a
// NUMERIC(18,2) column via database/sql.
func (m *Money) Scan(src any) error {
	var d decimal.Decimal

	switch v := src.(type) {
	case nil:
		d = decimal.Zero
	case []byte:
		parsed, err := decimal.NewFromString(string(v))
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}

		d = parsed
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}

		d = parsed
	case float64:
		d = decimal.NewFromFloat(v)
	default:
		return fmt.Errorf("money: unsupported scan source type %T", src)
	}

	*m = New(d)

	return nil
}
