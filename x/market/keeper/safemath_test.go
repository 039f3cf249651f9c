package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/fixedswap-chain/fixedswap/testutil/keeper"
	"github.com/fixedswap-chain/fixedswap/x/market/keeper"
	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

func TestSafeMul(t *testing.T) {
	got, err := keeper.SafeMul(math.NewInt(7), math.NewInt(6))
	require.NoError(t, err)
	require.True(t, got.Equal(math.NewInt(42)))

	got, err = keeper.SafeMul(math.NewInt(0), math.NewInt(6))
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestSafeMul_Overflow(t *testing.T) {
	// 2^255 * 2 = 2^256, one past the largest representable value.
	big := keepertest.IntFromString(t, "57896044618658097711785492504343953926634992332820282019728792003956564819968")

	_, err := keeper.SafeMul(big, math.NewInt(2))
	require.ErrorIs(t, err, types.ErrMultiplicationOverflow)

	// 2^256 - 1 itself is still fine times one.
	max := keepertest.IntFromString(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935")
	got, err := keeper.SafeMul(max, math.NewInt(1))
	require.NoError(t, err)
	require.True(t, got.Equal(max))
}

func TestSafeQuo(t *testing.T) {
	got, err := keeper.SafeQuo(math.NewInt(42), math.NewInt(6))
	require.NoError(t, err)
	require.True(t, got.Equal(math.NewInt(7)))

	// Division truncates toward zero.
	got, err = keeper.SafeQuo(math.NewInt(10), math.NewInt(3))
	require.NoError(t, err)
	require.True(t, got.Equal(math.NewInt(3)))

	got, err = keeper.SafeQuo(math.NewInt(2), math.NewInt(3))
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestSafeQuo_ZeroDivisor(t *testing.T) {
	_, err := keeper.SafeQuo(math.NewInt(42), math.NewInt(0))
	require.ErrorIs(t, err, types.ErrDivisionUnderflow)
}
