package cpmm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialLiquidity(t *testing.T) {
	require.EqualValues(t, 6, InitialLiquidity(4, 9))
	require.EqualValues(t, 1_000_000, InitialLiquidity(1_000_000, 1_000_000))
	require.Zero(t, InitialLiquidity(0, 9))
	require.Zero(t, InitialLiquidity(4, 0))
}

func TestInitialLiquidity_SeparateFloors(t *testing.T) {
	// sqrt(2)*sqrt(8) = 1*2 = 2, while floor(sqrt(16)) would be 4. The
	// separately floored roots are the fixed behavior.
	require.EqualValues(t, 2, InitialLiquidity(2, 8))
}

func TestInitialLiquidity_MaxInputs(t *testing.T) {
	// (2^32-1)^2 is the largest possible mint and still fits.
	want := uint64(1<<32-1) * uint64(1<<32-1)
	require.Equal(t, want, InitialLiquidity(math.MaxUint64, math.MaxUint64))
}

func TestSubsequentLiquidity_Preconditions(t *testing.T) {
	_, err := SubsequentLiquidity(0, 10, 100, 100, 100)
	require.ErrorIs(t, err, ErrZeroAmount)
	_, err = SubsequentLiquidity(10, 0, 100, 100, 100)
	require.ErrorIs(t, err, ErrZeroAmount)
	_, err = SubsequentLiquidity(10, 10, 0, 100, 100)
	require.ErrorIs(t, err, ErrEmptyReserves)
	_, err = SubsequentLiquidity(10, 10, 100, 0, 100)
	require.ErrorIs(t, err, ErrEmptyReserves)
}

func TestSubsequentLiquidity_BranchesAgreeOnProportionalDeposit(t *testing.T) {
	cases := []struct {
		rx, ry, supply uint64
	}{
		{1000, 1000, 1000},
		{1000, 4000, 2000},
		{12_345, 67_890, 31_415},
	}
	for _, c := range cases {
		// Deposit exactly one pool's worth: both ratios equal 1.
		minted, err := SubsequentLiquidity(c.rx, c.ry, c.rx, c.ry, c.supply)
		require.NoError(t, err)
		require.Equal(t, c.supply, minted)

		// Doubling both sides keeps the ratios equal; either branch must
		// yield floor(2 * supply).
		minted, err = SubsequentLiquidity(2*c.rx, 2*c.ry, c.rx, c.ry, c.supply)
		require.NoError(t, err)
		require.Equal(t, 2*c.supply, minted)
	}
}

func TestSubsequentLiquidity_MintsBySmallerRatio(t *testing.T) {
	// x ratio 10/1000, y ratio 500/1000: the x side is limiting.
	minted, err := SubsequentLiquidity(10, 500, 1000, 1000, 1000)
	require.NoError(t, err)
	require.EqualValues(t, 10, minted)

	// Mirror image: the y side is limiting.
	minted, err = SubsequentLiquidity(500, 10, 1000, 1000, 1000)
	require.NoError(t, err)
	require.EqualValues(t, 10, minted)
}

func TestSubsequentLiquidity_Overflow(t *testing.T) {
	_, err := SubsequentLiquidity(math.MaxUint64, math.MaxUint64, 1, 1, math.MaxUint64)
	require.ErrorIs(t, err, ErrAmountOverflow)
}

func TestRemoveLiquidity_FullRemoval(t *testing.T) {
	x, y, err := RemoveLiquidity(1000, 1000, 123_456, 789_012)
	require.NoError(t, err)
	require.EqualValues(t, 123_456, x)
	require.EqualValues(t, 789_012, y)
}

func TestRemoveLiquidity_Proportional(t *testing.T) {
	x, y, err := RemoveLiquidity(250, 1000, 4000, 8000)
	require.NoError(t, err)
	require.EqualValues(t, 1000, x)
	require.EqualValues(t, 2000, y)
}

func TestRemoveLiquidity_ZeroSupply(t *testing.T) {
	_, _, err := RemoveLiquidity(10, 0, 1000, 1000)
	require.ErrorIs(t, err, ErrEmptyReserves)
}

func TestRemoveLiquidity_OversizedBurnOverflows(t *testing.T) {
	_, _, err := RemoveLiquidity(math.MaxUint64, 1, math.MaxUint64, 1)
	require.ErrorIs(t, err, ErrAmountOverflow)
}

func TestRemoveThenRedeposit_NeverCreatesValue(t *testing.T) {
	cases := []struct {
		burn, supply, rx, ry uint64
	}{
		{100, 1000, 5000, 9000},
		{333, 1000, 7777, 1234},
		{1, 1_000_000, 999_999_937, 3},
		{999, 1000, 12_345_678, 87_654_321},
	}
	for _, c := range cases {
		x, y, err := RemoveLiquidity(c.burn, c.supply, c.rx, c.ry)
		require.NoError(t, err)
		if x == 0 || y == 0 {
			continue // nothing to redeposit
		}
		remainedX, remainedY := c.rx-x, c.ry-y
		remainedSupply := c.supply - c.burn
		minted, err := SubsequentLiquidity(x, y, remainedX, remainedY, remainedSupply)
		require.NoError(t, err)
		require.LessOrEqual(t, minted, c.burn,
			"round trip minted %d > burned %d (case %+v)", minted, c.burn, c)
	}
}
