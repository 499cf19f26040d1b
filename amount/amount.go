// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

// Package amount provides checked satoshi arithmetic. Values cross the
// wire as plain 64-bit integers; this package exists so callers never do
// raw arithmetic that can silently wrap. Display or decimal-string
// formats are someone else's problem.
package amount

// integer covers both wire representations of an amount.
type integer interface {
	~uint64 | ~int64
}

// checkedAdd works for signed and unsigned alike: the sum wrapped exactly
// when adding a positive moved the result down, or adding a negative moved
// it up.
func checkedAdd[T integer](a, b T) (T, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

func checkedSub[T integer](a, b T) (T, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}

// checkedMul validates the product by dividing it back out. Two signed
// cases need care: the division itself faults on minimum/-1, so a == -1 is
// handled separately, where the product overflows exactly when b is the
// minimum value (its negation wraps onto itself).
func checkedMul[T integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	var minusOne T
	minusOne--
	c := a * b
	if minusOne < 0 && a == minusOne {
		if c == b {
			return 0, false
		}
		return c, true
	}
	if c/a != b {
		return 0, false
	}
	return c, true
}

// Amount is a non-negative quantity of satoshis.
type Amount uint64

// FromSat builds an Amount from a satoshi count.
func FromSat(sat uint64) Amount { return Amount(sat) }

// Sat returns the satoshi count.
func (a Amount) Sat() uint64 { return uint64(a) }

// CheckedAdd returns a+b, reporting false on overflow.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) { return checkedAdd(a, b) }

// CheckedSub returns a-b, reporting false on underflow.
func (a Amount) CheckedSub(b Amount) (Amount, bool) { return checkedSub(a, b) }

// CheckedMul returns a*b, reporting false on overflow.
func (a Amount) CheckedMul(b Amount) (Amount, bool) { return checkedMul(a, b) }

// SignedAmount is a quantity of satoshis that may be negative, as needed
// for fee deltas and balance changes.
type SignedAmount int64

// SignedFromSat builds a SignedAmount from a satoshi count.
func SignedFromSat(sat int64) SignedAmount { return SignedAmount(sat) }

// Sat returns the satoshi count.
func (a SignedAmount) Sat() int64 { return int64(a) }

// CheckedAdd returns a+b, reporting false on overflow.
func (a SignedAmount) CheckedAdd(b SignedAmount) (SignedAmount, bool) { return checkedAdd(a, b) }

// CheckedSub returns a-b, reporting false on overflow.
func (a SignedAmount) CheckedSub(b SignedAmount) (SignedAmount, bool) { return checkedSub(a, b) }

// CheckedMul returns a*b, reporting false on overflow.
func (a SignedAmount) CheckedMul(b SignedAmount) (SignedAmount, bool) { return checkedMul(a, b) }
