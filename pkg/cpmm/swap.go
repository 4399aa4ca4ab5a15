package cpmm

import "math/big"

// SwapOutput prices a constant-product swap with the fee taken from the
// input side before the invariant is applied:
//
//	out = floor(in' * reserveOut / (reserveIn * D + in'))  where in' = in * (D - feeBps)
//
// Floor division rounds in the pool's favor. feeBps must be <= FeeDenominator;
// the caller is trusted on this and it is not re-validated here. The result
// is strictly less than reserveOut. Reserves are never mutated: the caller
// applies reserveIn += amountIn, reserveOut -= amountOut itself and must
// verify amountOut against its own bounds before doing so.
//
// Returns ErrEmptyReserves if either reserve is zero and ErrZeroAmount if
// amountIn is zero.
func SwapOutput(amountIn, reserveIn, reserveOut, feeBps uint64) (uint64, error) {
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrEmptyReserves
	}
	if amountIn == 0 {
		return 0, ErrZeroAmount
	}

	inWithFee := new(big.Int).SetUint64(amountIn)
	inWithFee.Mul(inWithFee, new(big.Int).SetUint64(FeeDenominator-feeBps))

	num := new(big.Int).Mul(inWithFee, new(big.Int).SetUint64(reserveOut))

	den := new(big.Int).SetUint64(reserveIn)
	den.Mul(den, new(big.Int).SetUint64(FeeDenominator))
	den.Add(den, inWithFee)

	// num/den < reserveOut because den > inWithFee, so the narrow cannot fail.
	return num.Div(num, den).Uint64(), nil
}
