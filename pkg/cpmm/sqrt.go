package cpmm

import "math/big"

// Sqrt returns floor(sqrt(x)) using the Babylonian method. Defined for all
// inputs including math.MaxUint64.
func Sqrt(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	y := x
	// y/2 + y%2 instead of (y+1)/2, which would wrap at the maximum value.
	z := y/2 + y%2
	for z < y {
		y = z
		z = (z + x/z) / 2
	}
	return y
}

// SqrtBig is Sqrt over the widened domain: the same iteration on big.Int.
// x must be non-negative. The result is a fresh value; x is not modified.
func SqrtBig(x *big.Int) *big.Int {
	if x.Sign() == 0 {
		return new(big.Int)
	}
	two := big.NewInt(2)
	y := new(big.Int).Set(x)
	z := new(big.Int).Rsh(x, 1)
	if x.Bit(0) == 1 {
		z.Add(z, big.NewInt(1))
	}
	t := new(big.Int)
	for z.Cmp(y) < 0 {
		y.Set(z)
		t.Div(x, z)
		z.Add(z, t)
		z.Div(z, two)
	}
	return y
}
