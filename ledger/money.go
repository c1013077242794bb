package ledger

import (
	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits a Money carries.
const moneyScale = 4

// maxUnits is the ceiling for any single balance field, expressed in
// 1/10000 units: 10,000,000,000.0000. This is a hard limit; arithmetic
// that would cross it is rejected, never clamped.
const maxUnits = 100_000_000_000_000

// maxAmount is maxUnits as a decimal, used to bound parsed input.
var maxAmount = decimal.New(maxUnits, -moneyScale)

// Money is a fixed-point monetary amount stored as an integer count of
// 1/10000 currency units. All arithmetic is exact and checked against the
// balance ceiling; binary floating point never enters the math. Decimal
// text is converted only at the input/output boundary.
type Money struct {
	units int64
}

// MaxMoney is the largest value a single balance field may hold.
var MaxMoney = Money{units: maxUnits}

// NewMoney builds a Money from a raw count of 1/10000 units. It panics on
// out-of-range counts; use ParseMoney for untrusted input.
func NewMoney(units int64) Money {
	if units < 0 || units > maxUnits {
		panic("ledger: money units out of range")
	}
	return Money{units: units}
}

// ParseMoney converts a decimal literal to Money, rounding half away from
// zero to four fractional digits. Negative values and values above the
// balance ceiling are rejected with a *MalformedAmountError.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, &MalformedAmountError{Value: s, Reason: "not a decimal literal"}
	}
	if d.IsNegative() {
		return Money{}, &MalformedAmountError{Value: s, Reason: "negative amount"}
	}

	d = d.Round(moneyScale)
	if d.GreaterThan(maxAmount) {
		return Money{}, &MalformedAmountError{Value: s, Reason: "amount exceeds the balance ceiling"}
	}

	return Money{units: d.Shift(moneyScale).IntPart()}, nil
}

// MustParseMoney converts a decimal literal to Money and panics on error.
// Use only in tests or when the literal is known valid.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + o, or an *OverflowError when the exact sum would cross
// the balance ceiling.
func (m Money) Add(o Money) (Money, error) {
	sum := m.units + o.units
	if sum > maxUnits {
		return Money{}, &OverflowError{Balance: m, Amount: o}
	}
	return Money{units: sum}, nil
}

// Sub returns m - o, or an *InsufficientFundsError when the result would be
// negative. Balances never go below zero, so underflow always means the
// caller asked for more than is there.
func (m Money) Sub(o Money) (Money, error) {
	if m.units < o.units {
		return Money{}, &InsufficientFundsError{Balance: m, Amount: o}
	}
	return Money{units: m.units - o.units}, nil
}

// addUnchecked returns m + o without the ceiling check. Only snapshot
// totals use it: available and held are each bounded, but their sum may
// legitimately cross the per-field ceiling and deriving a total must not
// fail.
func (m Money) addUnchecked(o Money) Money {
	return Money{units: m.units + o.units}
}

// Less reports whether m is strictly smaller than o.
func (m Money) Less(o Money) bool {
	return m.units < o.units
}

// Equal reports exact equality. Money is integer-backed, so equality never
// suffers floating-point comparison pitfalls.
func (m Money) Equal(o Money) bool {
	return m.units == o.units
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool {
	return m.units == 0
}

// String renders the amount with exactly four fractional digits,
// regardless of trailing zeros.
func (m Money) String() string {
	return decimal.New(m.units, -moneyScale).StringFixed(moneyScale)
}
