package cpmm

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSqrt_Zero(t *testing.T) {
	require.EqualValues(t, 0, Sqrt(0))
}

func TestSqrt_PerfectSquares(t *testing.T) {
	for _, k := range []uint64{1, 2, 3, 10, 255, 1 << 16, 99_999, 1<<32 - 1} {
		require.Equal(t, k, Sqrt(k*k), "sqrt(%d^2)", k)
	}
}

func TestSqrt_FloorsBetweenSquares(t *testing.T) {
	require.EqualValues(t, 1, Sqrt(3))
	require.EqualValues(t, 2, Sqrt(8))
	require.EqualValues(t, 3, Sqrt(15))
	require.EqualValues(t, 31, Sqrt(999))
}

func TestSqrt_MaxUint64(t *testing.T) {
	// floor(sqrt(2^64 - 1)) = 2^32 - 1
	require.Equal(t, uint64(1<<32-1), Sqrt(math.MaxUint64))
}

func TestSqrt_Monotonic(t *testing.T) {
	prev := Sqrt(0)
	for x := uint64(1); x < 10_000; x++ {
		cur := Sqrt(x)
		require.GreaterOrEqual(t, cur, prev, "sqrt not monotonic at %d", x)
		prev = cur
	}
}

func TestSqrtBig_MatchesNative(t *testing.T) {
	for _, x := range []uint64{0, 1, 2, 8, 999, 1 << 40, math.MaxUint64} {
		got := SqrtBig(new(big.Int).SetUint64(x))
		require.Equal(t, Sqrt(x), got.Uint64(), "x=%d", x)
	}
}

func TestSqrtBig_WideInput(t *testing.T) {
	// (2^80 + 12345)^2 exercises the widened domain well past 64 bits.
	root := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 80), big.NewInt(12345))
	sq := new(big.Int).Mul(root, root)
	require.Zero(t, SqrtBig(sq).Cmp(root))

	// One below the square floors down to root-1.
	sq.Sub(sq, big.NewInt(1))
	want := new(big.Int).Sub(root, big.NewInt(1))
	require.Zero(t, SqrtBig(sq).Cmp(want))
}

func TestSqrtBig_DoesNotMutateInput(t *testing.T) {
	x := big.NewInt(1_000_000)
	_ = SqrtBig(x)
	require.EqualValues(t, 1_000_000, x.Int64())
}
