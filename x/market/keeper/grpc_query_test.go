package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	keepertest "github.com/fixedswap-chain/fixedswap/testutil/keeper"
	"github.com/fixedswap-chain/fixedswap/x/market/keeper"
	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

func requireGRPCCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a grpc status error, got %v", err)
	require.Equal(t, code, st.Code())
}

func TestQueryInitializationStatus(t *testing.T) {
	k, _, ctx := keepertest.MarketKeeper(t)

	res, err := k.InitializationStatus(ctx, &types.QueryInitializationStatusRequest{})
	require.NoError(t, err)
	require.False(t, res.Initialized)

	require.NoError(t, k.Initialize(ctx))

	res, err = k.InitializationStatus(ctx, &types.QueryInitializationStatusRequest{})
	require.NoError(t, err)
	require.True(t, res.Initialized)

	_, err = k.InitializationStatus(ctx, nil)
	requireGRPCCode(t, err, codes.InvalidArgument)
}

func TestQueryCurrentMarketIndex(t *testing.T) {
	k, bank, ctx := keepertest.MarketKeeper(t)

	res, err := k.CurrentMarketIndex(ctx, &types.QueryCurrentMarketIndexRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(0), res.MarketIndex)

	require.NoError(t, k.Initialize(ctx))
	res, err = k.CurrentMarketIndex(ctx, &types.QueryCurrentMarketIndexRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.MarketIndex)

	createTestMarket(t, k, bank, ctx, "ubase", "uquote", 3)
	res, err = k.CurrentMarketIndex(ctx, &types.QueryCurrentMarketIndexRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), res.MarketIndex)
}

func TestQueryExchangeRate(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	createTestMarket(t, k, bank, ctx, "ubase", "uquote", 3)

	res, err := k.ExchangeRate(ctx, &types.QueryExchangeRateRequest{BaseToken: "ubase", QuoteToken: "uquote"})
	require.NoError(t, err)
	require.True(t, res.ExchangeRate.Equal(math.NewInt(3)))

	// Absent and reverse pairs both report a zero rate, not an error.
	res, err = k.ExchangeRate(ctx, &types.QueryExchangeRateRequest{BaseToken: "uquote", QuoteToken: "ubase"})
	require.NoError(t, err)
	require.True(t, res.ExchangeRate.IsZero())

	_, err = k.ExchangeRate(ctx, &types.QueryExchangeRateRequest{BaseToken: "", QuoteToken: "uquote"})
	requireGRPCCode(t, err, codes.InvalidArgument)
}

func TestQueryMarketID(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	createTestMarket(t, k, bank, ctx, "ubase", "uquote", 3)

	res, err := k.MarketID(ctx, &types.QueryMarketIDRequest{BaseToken: "ubase", QuoteToken: "uquote"})
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.MarketId)

	res, err = k.MarketID(ctx, &types.QueryMarketIDRequest{BaseToken: "uquote", QuoteToken: "ubase"})
	require.NoError(t, err)
	require.Equal(t, uint64(0), res.MarketId)
}

func TestQueryMarketByTokens(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	createTestMarket(t, k, bank, ctx, "ubase", "uquote", 3)

	res, err := k.MarketByTokens(ctx, &types.QueryMarketByTokensRequest{BaseToken: "ubase", QuoteToken: "uquote"})
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.Market.Id)
	require.True(t, res.Market.ExchangeRate.Equal(math.NewInt(3)))

	_, err = k.MarketByTokens(ctx, &types.QueryMarketByTokensRequest{BaseToken: "uquote", QuoteToken: "ubase"})
	requireGRPCCode(t, err, codes.NotFound)
}

func TestQueryMarketByID_Bounds(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	createTestMarket(t, k, bank, ctx, "ubase", "uquote", 3)

	res, err := k.MarketByID(ctx, &types.QueryMarketByIDRequest{MarketId: 1})
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.Market.Id)

	// Zero and the counter value itself sit outside the valid range.
	_, err = k.MarketByID(ctx, &types.QueryMarketByIDRequest{MarketId: 0})
	requireGRPCCode(t, err, codes.NotFound)

	_, err = k.MarketByID(ctx, &types.QueryMarketByIDRequest{MarketId: 2})
	requireGRPCCode(t, err, codes.NotFound)
}

func TestQueryMarkets_Pagination(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	createTestMarket(t, k, bank, ctx, "ubase", "uquote", 2)
	createTestMarket(t, k, bank, ctx, "uquote", "ubase", 3)
	createTestMarket(t, k, bank, ctx, "ubase", "uother", 5)

	res, err := k.Markets(ctx, &types.QueryMarketsRequest{})
	require.NoError(t, err)
	require.Len(t, res.Markets, 3)
	require.Equal(t, uint64(3), res.Pagination.Total)

	res, err = k.Markets(ctx, &types.QueryMarketsRequest{
		Pagination: &query.PageRequest{Offset: 1, Limit: 1},
	})
	require.NoError(t, err)
	require.Len(t, res.Markets, 1)
	require.Equal(t, uint64(2), res.Markets[0].Id)

	// The cursor is the next offset as a full big-endian uint64.
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 2}, res.Pagination.NextKey)
}

func TestQueryMarkets_OffsetPastEnd(t *testing.T) {
	k, bank, ctx := setupInitialized(t)
	createTestMarket(t, k, bank, ctx, "ubase", "uquote", 2)

	// An offset past the end yields an empty page, not the first one over.
	res, err := k.Markets(ctx, &types.QueryMarketsRequest{
		Pagination: &query.PageRequest{Offset: 10, Limit: 5},
	})
	require.NoError(t, err)
	require.Empty(t, res.Markets)
	require.Nil(t, res.Pagination.NextKey)
	require.Equal(t, uint64(1), res.Pagination.Total)
}

// createTestMarket funds a fresh creator and registers a market with
// liquidity 1000 base and 1000*rate quote.
func createTestMarket(t *testing.T, k keeper.Keeper, bank *keepertest.BankKeeper, ctx sdk.Context, base, quote string, rate int64) uint64 {
	t.Helper()

	creator := keepertest.TestAddress(9)
	baseAmount := math.NewInt(1000)
	quoteAmount := baseAmount.Mul(math.NewInt(rate))
	bank.FundAccount(creator, sdk.NewCoins(sdk.NewCoin(base, baseAmount)).Add(sdk.NewCoin(quote, quoteAmount)))

	id, _, err := k.CreateMarket(ctx, creator, base, quote, math.NewInt(rate), baseAmount, quoteAmount)
	require.NoError(t, err)
	return id
}
