package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// CreateMarket registers a fixed-rate market for the ordered (base, quote)
// pair, funds it with the creator's initial liquidity, and returns the
// assigned market id together with the advanced counter value.
//
// The initial liquidity must be exact on both sides of the rate:
// quoteAmount == baseAmount * rate and baseAmount == quoteAmount / rate.
func (k Keeper) CreateMarket(
	ctx context.Context,
	creator sdk.AccAddress,
	baseToken, quoteToken string,
	exchangeRate, baseAmount, quoteAmount math.Int,
) (uint64, uint64, error) {
	if !k.IsInitialized(ctx) {
		return 0, 0, types.ErrNotInitialized
	}

	if !exchangeRate.IsPositive() {
		return 0, 0, types.ErrZeroExchangeRate
	}
	if baseToken == "" {
		return 0, 0, types.ErrEmptyBaseToken
	}
	if err := sdk.ValidateDenom(baseToken); err != nil {
		return 0, 0, types.ErrEmptyBaseToken.Wrapf("invalid base token denom: %v", err)
	}
	if quoteToken == "" {
		return 0, 0, types.ErrEmptyQuoteToken
	}
	if err := sdk.ValidateDenom(quoteToken); err != nil {
		return 0, 0, types.ErrEmptyQuoteToken.Wrapf("invalid quote token denom: %v", err)
	}
	if !baseAmount.IsPositive() {
		return 0, 0, types.ErrZeroAmount.Wrap("base amount")
	}
	if !quoteAmount.IsPositive() {
		return 0, 0, types.ErrZeroAmount.Wrap("quote amount")
	}

	expectedBase, err := SafeQuo(quoteAmount, exchangeRate)
	if err != nil {
		return 0, 0, err
	}
	if !expectedBase.Equal(baseAmount) {
		return 0, 0, types.ErrIncorrectBaseAmount.Wrapf(
			"got %s, want %s for quote amount %s at rate %s",
			baseAmount, expectedBase, quoteAmount, exchangeRate,
		)
	}

	expectedQuote, err := SafeMul(baseAmount, exchangeRate)
	if err != nil {
		return 0, 0, err
	}
	if !expectedQuote.Equal(quoteAmount) {
		return 0, 0, types.ErrIncorrectQuoteAmount.Wrapf(
			"got %s, want %s for base amount %s at rate %s",
			quoteAmount, expectedQuote, baseAmount, exchangeRate,
		)
	}

	if existing := k.GetMarketIDByTokens(ctx, baseToken, quoteToken); existing != 0 {
		return 0, 0, types.ErrMarketExists.Wrapf(
			"market %d already covers pair %s/%s", existing, baseToken, quoteToken,
		)
	}

	marketID := k.GetNextMarketID(ctx)
	market := types.NewMarket(marketID, baseToken, quoteToken, exchangeRate)
	if err := k.SetMarket(ctx, market); err != nil {
		return 0, 0, err
	}
	k.setMarketIDByTokens(ctx, baseToken, quoteToken, marketID)
	k.setNextMarketID(ctx, marketID+1)

	// Add merges the two coins when base and quote share a denom.
	liquidity := sdk.NewCoins(sdk.NewCoin(baseToken, baseAmount)).
		Add(sdk.NewCoin(quoteToken, quoteAmount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, liquidity); err != nil {
		return 0, 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMarketCreated,
			sdk.NewAttribute(types.AttributeKeyMarketID, strconv.FormatUint(marketID, 10)),
			sdk.NewAttribute(types.AttributeKeyBaseToken, baseToken),
			sdk.NewAttribute(types.AttributeKeyQuoteToken, quoteToken),
			sdk.NewAttribute(types.AttributeKeyExchangeRate, exchangeRate.String()),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
		),
	)

	k.Logger(ctx).Info("market created",
		"market_id", marketID,
		"base_token", baseToken,
		"quote_token", quoteToken,
		"exchange_rate", exchangeRate.String(),
	)

	return marketID, marketID + 1, nil
}

// FetchMarket retrieves a market by id, enforcing the registry bounds:
// valid ids are 1 <= id < next counter value.
func (k Keeper) FetchMarket(ctx context.Context, marketID uint64) (types.Market, error) {
	if !k.IsInitialized(ctx) {
		return types.Market{}, types.ErrNotInitialized
	}
	if marketID == 0 || marketID >= k.GetNextMarketID(ctx) {
		return types.Market{}, types.ErrOutOfBoundIndex.Wrapf("market id %d", marketID)
	}
	market, found := k.GetMarket(ctx, marketID)
	if !found {
		return types.Market{}, types.ErrMarketNotFound.Wrapf("market id %d", marketID)
	}
	return market, nil
}
