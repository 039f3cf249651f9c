package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/fixedswap-chain/fixedswap/testutil/keeper"
	"github.com/fixedswap-chain/fixedswap/x/market/keeper"
	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// setupMarketForSwaps creates a ubase/uquote market at rate 3 with 100/300
// units of 18-decimal liquidity, mirroring a stable-pair deployment.
func setupMarketForSwaps(t *testing.T, k keeper.Keeper, bank *keepertest.BankKeeper, ctx sdk.Context) {
	t.Helper()

	creator := keepertest.TestAddress(1)
	baseLiquidity := keepertest.IntFromString(t, "100000000000000000000")
	quoteLiquidity := keepertest.IntFromString(t, "300000000000000000000")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("ubase", baseLiquidity),
		sdk.NewCoin("uquote", quoteLiquidity),
	))

	_, _, err := k.CreateMarket(ctx, creator, "ubase", "uquote", math.NewInt(3), baseLiquidity, quoteLiquidity)
	require.NoError(t, err)
}

func TestSwapBaseForQuote(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	setupMarketForSwaps(t, k, bank, ctx)

	trader := keepertest.TestAddress(2)
	oneToken := keepertest.IntFromString(t, "1000000000000000000")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("ubase", oneToken)))

	amountOut, err := k.SwapBaseForQuote(ctx, trader, "ubase", "uquote", oneToken)
	require.NoError(t, err)
	require.True(t, amountOut.Equal(keepertest.IntFromString(t, "3000000000000000000")))

	require.True(t, bank.GetBalance(ctx, trader, "ubase").Amount.IsZero())
	require.True(t, bank.GetBalance(ctx, trader, "uquote").Amount.Equal(amountOut))
}

func TestSwapQuoteForBase(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	setupMarketForSwaps(t, k, bank, ctx)

	trader := keepertest.TestAddress(2)
	threeTokens := keepertest.IntFromString(t, "3000000000000000000")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uquote", threeTokens)))

	amountOut, err := k.SwapQuoteForBase(ctx, trader, "ubase", "uquote", threeTokens)
	require.NoError(t, err)
	require.True(t, amountOut.Equal(keepertest.IntFromString(t, "1000000000000000000")))

	require.True(t, bank.GetBalance(ctx, trader, "uquote").Amount.IsZero())
	require.True(t, bank.GetBalance(ctx, trader, "ubase").Amount.Equal(amountOut))
}

func TestSwapRoundTrip(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	setupMarketForSwaps(t, k, bank, ctx)

	trader := keepertest.TestAddress(2)
	oneToken := keepertest.IntFromString(t, "1000000000000000000")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("ubase", oneToken)))

	quoteOut, err := k.SwapBaseForQuote(ctx, trader, "ubase", "uquote", oneToken)
	require.NoError(t, err)

	// Rate-divisible amounts round-trip without loss.
	baseOut, err := k.SwapQuoteForBase(ctx, trader, "ubase", "uquote", quoteOut)
	require.NoError(t, err)
	require.True(t, baseOut.Equal(oneToken))
	require.True(t, bank.GetBalance(ctx, trader, "ubase").Amount.Equal(oneToken))
	require.True(t, bank.GetBalance(ctx, trader, "uquote").Amount.IsZero())
}

func TestSwapQuoteForBase_Truncation(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	setupMarketForSwaps(t, k, bank, ctx)

	trader := keepertest.TestAddress(2)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uquote", math.NewInt(10))))

	// 10 / 3 truncates to 3.
	amountOut, err := k.SwapQuoteForBase(ctx, trader, "ubase", "uquote", math.NewInt(10))
	require.NoError(t, err)
	require.True(t, amountOut.Equal(math.NewInt(3)))
}

func TestSwapQuoteForBase_TruncatesToZero(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	setupMarketForSwaps(t, k, bank, ctx)

	trader := keepertest.TestAddress(2)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uquote", math.NewInt(2))))

	// Input below the rate is consumed in full and yields nothing.
	amountOut, err := k.SwapQuoteForBase(ctx, trader, "ubase", "uquote", math.NewInt(2))
	require.NoError(t, err)
	require.True(t, amountOut.IsZero())
	require.True(t, bank.GetBalance(ctx, trader, "uquote").Amount.IsZero())
	require.True(t, bank.GetBalance(ctx, trader, "ubase").Amount.IsZero())
}

func TestSwap_Preconditions(t *testing.T) {
	tests := []struct {
		name        string
		base, quote string
		amount      math.Int
		wantErr     error
	}{
		{name: "zero amount", base: "ubase", quote: "uquote", amount: math.NewInt(0), wantErr: types.ErrZeroAmount},
		{name: "empty base token", base: "", quote: "uquote", amount: math.NewInt(10), wantErr: types.ErrEmptyBaseToken},
		{name: "empty quote token", base: "ubase", quote: "", amount: math.NewInt(10), wantErr: types.ErrEmptyQuoteToken},
		{name: "malformed base denom", base: "x", quote: "uquote", amount: math.NewInt(10), wantErr: types.ErrEmptyBaseToken},
		{name: "malformed quote denom", base: "ubase", quote: "7!", amount: math.NewInt(10), wantErr: types.ErrEmptyQuoteToken},
		{name: "unknown pair", base: "ubase", quote: "uother", amount: math.NewInt(10), wantErr: types.ErrMarketNotFound},
		{name: "reverse pair", base: "uquote", quote: "ubase", amount: math.NewInt(10), wantErr: types.ErrMarketNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, bank, ctx := setupInitialized(t)
			setupMarketForSwaps(t, k, bank, ctx)
			trader := keepertest.TestAddress(2)

			_, err := k.SwapBaseForQuote(ctx, trader, tc.base, tc.quote, tc.amount)
			require.ErrorIs(t, err, tc.wantErr)

			_, err = k.SwapQuoteForBase(ctx, trader, tc.base, tc.quote, tc.amount)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSwap_NotInitialized(t *testing.T) {
	k, _, ctx := keepertest.MarketKeeper(t)
	trader := keepertest.TestAddress(2)

	_, err := k.SwapBaseForQuote(ctx, trader, "ubase", "uquote", math.NewInt(10))
	require.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestSwap_InsufficientFunds(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	setupMarketForSwaps(t, k, bank, ctx)

	// Trader holds nothing; the input transfer fails and nothing moves.
	trader := keepertest.TestAddress(2)
	_, err := k.SwapBaseForQuote(ctx, trader, "ubase", "uquote", math.NewInt(10))
	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient funds")
	require.True(t, bank.GetBalance(ctx, trader, "uquote").Amount.IsZero())
}

func TestSwap_Events(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	setupMarketForSwaps(t, k, bank, ctx)

	trader := keepertest.TestAddress(2)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("ubase", math.NewInt(10))))

	before := len(ctx.EventManager().Events())
	_, err := k.SwapBaseForQuote(ctx, trader, "ubase", "uquote", math.NewInt(10))
	require.NoError(t, err)

	events := ctx.EventManager().Events()
	require.Len(t, events, before+1)
	last := events[len(events)-1]
	require.Equal(t, types.EventTypeSwapBaseForQuote, last.Type)

	attrs := make(map[string]string, len(last.Attributes))
	for _, attr := range last.Attributes {
		attrs[attr.Key] = attr.Value
	}
	require.Equal(t, "1", attrs[types.AttributeKeyMarketID])
	require.Equal(t, "10", attrs[types.AttributeKeyAmountIn])
	require.Equal(t, "30", attrs[types.AttributeKeyAmountOut])
	require.Equal(t, trader.String(), attrs[types.AttributeKeyTrader])
}
