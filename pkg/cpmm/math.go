// Package cpmm implements the constant-product market maker math core:
// swap pricing, liquidity share issuance and removal. All quantities are
// atomic token units in uint64; intermediates that can exceed 64 bits are
// carried in math/big and narrowed back only at the end, with floor
// division throughout.
//
// Every function is pure and safe for concurrent use. The caller owns the
// actual reserve and supply state and is responsible for applying results
// to it under a consistent snapshot.
package cpmm

import "math/big"

// FeeDenominator is the fixed basis-point denominator: a fee of
// FeeDenominator bps is 100%.
const FeeDenominator uint64 = 10_000

// Min returns the smaller of a and b.
func Min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// mulDiv computes floor(a * b / div) in the widened domain. div must be
// non-zero; callers check their own preconditions first.
func mulDiv(a, b, div uint64) *big.Int {
	p := new(big.Int).SetUint64(a)
	p.Mul(p, new(big.Int).SetUint64(b))
	return p.Div(p, new(big.Int).SetUint64(div))
}

// narrow converts a widened result back to uint64, reporting
// ErrAmountOverflow if it no longer fits the native width.
func narrow(v *big.Int) (uint64, error) {
	if !v.IsUint64() {
		return 0, ErrAmountOverflow
	}
	return v.Uint64(), nil
}
