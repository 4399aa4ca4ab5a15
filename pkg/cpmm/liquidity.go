package cpmm

import "math/big"

// InitialLiquidity returns the LP shares minted for the first deposit into
// an empty pool: Sqrt(amountX) * Sqrt(amountY), the geometric mean of the
// deposit. The roots are floored separately before multiplying; this is not
// the same as floor(sqrt(x*y)) and the distinction is deliberate, since it
// fixes how many shares the first depositor receives. Each root fits in 32
// bits, so the product cannot overflow.
func InitialLiquidity(amountX, amountY uint64) uint64 {
	return Sqrt(amountX) * Sqrt(amountY)
}

// SubsequentLiquidity returns the LP shares minted for a deposit into a pool
// that already has reserves and outstanding supply. The deposit side with the
// smaller proportional contribution determines the mint:
//
//	minted = floor(amount * lpSupply / reserve)  on the smaller-ratio side
//
// The ratios are compared by cross product (amountX*reserveY vs
// reserveX*amountY) in the widened domain, so no division happens before the
// comparison. Minting by the minimum never rewards over-supplying one side
// against the pool's current price.
//
// Returns ErrEmptyReserves if either reserve is zero, ErrZeroAmount if
// either amount is zero, and ErrAmountOverflow if the minted shares exceed
// uint64.
func SubsequentLiquidity(amountX, amountY, reserveX, reserveY, lpSupply uint64) (uint64, error) {
	if reserveX == 0 || reserveY == 0 {
		return 0, ErrEmptyReserves
	}
	if amountX == 0 || amountY == 0 {
		return 0, ErrZeroAmount
	}

	crossX := new(big.Int).SetUint64(amountX)
	crossX.Mul(crossX, new(big.Int).SetUint64(reserveY))
	crossY := new(big.Int).SetUint64(reserveX)
	crossY.Mul(crossY, new(big.Int).SetUint64(amountY))

	if crossX.Cmp(crossY) <= 0 {
		return narrow(mulDiv(amountX, lpSupply, reserveX))
	}
	return narrow(mulDiv(amountY, lpSupply, reserveY))
}

// RemoveLiquidity returns the payout of both reserve assets for burning
// lpAmount of lpSupply shares, each side floor(lpAmount * reserve / lpSupply)
// computed independently in the widened domain.
//
// Returns ErrEmptyReserves if lpSupply is zero and ErrAmountOverflow if a
// payout exceeds uint64 (possible only when lpAmount > lpSupply, which the
// caller normally prevents by checking the burner's position).
func RemoveLiquidity(lpAmount, lpSupply, reserveX, reserveY uint64) (amountX, amountY uint64, err error) {
	if lpSupply == 0 {
		return 0, 0, ErrEmptyReserves
	}
	if amountX, err = narrow(mulDiv(lpAmount, reserveX, lpSupply)); err != nil {
		return 0, 0, err
	}
	if amountY, err = narrow(mulDiv(lpAmount, reserveY, lpSupply)); err != nil {
		return 0, 0, err
	}
	return amountX, amountY, nil
}
