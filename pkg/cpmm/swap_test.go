package cpmm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapOutput_KnownScenario(t *testing.T) {
	// numerator   = 100 * 9970 * 1000 = 997_000_000
	// denominator = 1000 * 10000 + 100 * 9970 = 1_997_000
	out, err := SwapOutput(100, 1000, 1000, 30)
	require.NoError(t, err)
	require.EqualValues(t, 499, out)
}

func TestSwapOutput_Preconditions(t *testing.T) {
	_, err := SwapOutput(0, 1000, 1000, 30)
	require.ErrorIs(t, err, ErrZeroAmount)

	_, err = SwapOutput(100, 0, 1000, 30)
	require.ErrorIs(t, err, ErrEmptyReserves)

	_, err = SwapOutput(100, 1000, 0, 30)
	require.ErrorIs(t, err, ErrEmptyReserves)
}

func TestSwapOutput_MonotonicInAmountIn(t *testing.T) {
	const rIn, rOut, fee = 1_000_000, 2_000_000, 30
	var prev uint64
	for in := uint64(1); in < 5_000; in += 7 {
		out, err := SwapOutput(in, rIn, rOut, fee)
		require.NoError(t, err)
		require.GreaterOrEqual(t, out, prev, "output decreased at in=%d", in)
		prev = out
	}
}

func TestSwapOutput_NeverDrainsReserve(t *testing.T) {
	cases := []struct {
		in, rIn, rOut, fee uint64
	}{
		{math.MaxUint64, 1, 1, 0},
		{math.MaxUint64, 1, math.MaxUint64, 0},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64, 0},
		{1 << 50, 1000, 1000, 30},
	}
	for _, c := range cases {
		out, err := SwapOutput(c.in, c.rIn, c.rOut, c.fee)
		require.NoError(t, err)
		require.Less(t, out, c.rOut, "in=%d rIn=%d rOut=%d fee=%d", c.in, c.rIn, c.rOut, c.fee)
	}
}

func TestSwapOutput_FeeReducesOutput(t *testing.T) {
	free, err := SwapOutput(1000, 1_000_000, 1_000_000, 0)
	require.NoError(t, err)
	taxed, err := SwapOutput(1000, 1_000_000, 1_000_000, 30)
	require.NoError(t, err)
	require.Greater(t, free, taxed)

	// A 100% fee consumes the whole input.
	out, err := SwapOutput(1000, 1_000_000, 1_000_000, FeeDenominator)
	require.NoError(t, err)
	require.Zero(t, out)
}

func TestMinMax(t *testing.T) {
	require.EqualValues(t, 1, Min(1, 2))
	require.EqualValues(t, 2, Max(1, 2))
	require.EqualValues(t, 7, Min(7, 7))
	require.EqualValues(t, 7, Max(7, 7))
	require.EqualValues(t, 0, Min(0, math.MaxUint64))
	require.Equal(t, uint64(math.MaxUint64), Max(0, math.MaxUint64))
}

func BenchmarkSwapOutput(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = SwapOutput(1_000_000, 13_451_234_567_890, 98_765_432_109_876, 30)
	}
}
