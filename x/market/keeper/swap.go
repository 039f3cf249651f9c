package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// SwapBaseForQuote swaps baseAmount of the base token for the quote token
// at the market's fixed rate: amountOut = baseAmount * rate. The base
// tokens move from the trader to the module account and the quote tokens
// move back the other way in the same transaction.
func (k Keeper) SwapBaseForQuote(
	ctx context.Context,
	trader sdk.AccAddress,
	baseToken, quoteToken string,
	baseAmount math.Int,
) (math.Int, error) {
	market, err := k.resolveSwapMarket(ctx, baseToken, quoteToken, baseAmount)
	if err != nil {
		return math.Int{}, err
	}

	amountOut, err := SafeMul(baseAmount, market.ExchangeRate)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.settleSwap(ctx, trader, baseToken, baseAmount, quoteToken, amountOut); err != nil {
		return math.Int{}, err
	}

	k.emitSwapEvent(ctx, types.EventTypeSwapBaseForQuote, market, trader, baseAmount, amountOut)

	return amountOut, nil
}

// SwapQuoteForBase swaps quoteAmount of the quote token for the base token
// at the market's fixed rate: amountOut = quoteAmount / rate, truncating
// toward zero. Quote amounts below the rate yield zero base tokens out
// while the quote tokens are still taken in full.
func (k Keeper) SwapQuoteForBase(
	ctx context.Context,
	trader sdk.AccAddress,
	baseToken, quoteToken string,
	quoteAmount math.Int,
) (math.Int, error) {
	market, err := k.resolveSwapMarket(ctx, baseToken, quoteToken, quoteAmount)
	if err != nil {
		return math.Int{}, err
	}

	amountOut, err := SafeQuo(quoteAmount, market.ExchangeRate)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.settleSwap(ctx, trader, quoteToken, quoteAmount, baseToken, amountOut); err != nil {
		return math.Int{}, err
	}

	k.emitSwapEvent(ctx, types.EventTypeSwapQuoteForBase, market, trader, quoteAmount, amountOut)

	return amountOut, nil
}

// resolveSwapMarket runs the shared swap preconditions and resolves the
// ordered pair to its market. The pair index is directional, so swapping
// against the reverse of a registered pair fails the same way as a pair
// that was never registered.
func (k Keeper) resolveSwapMarket(
	ctx context.Context,
	baseToken, quoteToken string,
	amountIn math.Int,
) (types.Market, error) {
	if !k.IsInitialized(ctx) {
		return types.Market{}, types.ErrNotInitialized
	}
	if !amountIn.IsPositive() {
		return types.Market{}, types.ErrZeroAmount
	}
	if baseToken == "" {
		return types.Market{}, types.ErrEmptyBaseToken
	}
	if err := sdk.ValidateDenom(baseToken); err != nil {
		return types.Market{}, types.ErrEmptyBaseToken.Wrapf("invalid base token denom: %v", err)
	}
	if quoteToken == "" {
		return types.Market{}, types.ErrEmptyQuoteToken
	}
	if err := sdk.ValidateDenom(quoteToken); err != nil {
		return types.Market{}, types.ErrEmptyQuoteToken.Wrapf("invalid quote token denom: %v", err)
	}

	marketID := k.GetMarketIDByTokens(ctx, baseToken, quoteToken)
	if marketID == 0 {
		return types.Market{}, types.ErrMarketNotFound.Wrapf("pair %s/%s", baseToken, quoteToken)
	}
	market, found := k.GetMarket(ctx, marketID)
	if !found {
		return types.Market{}, types.ErrMarketNotFound.Wrapf("market id %d", marketID)
	}
	return market, nil
}

// settleSwap moves the input coins from the trader into module custody and
// pays the output coins out of it. A zero output leg is skipped; the bank
// keeper rejects zero coins and the truncating quote->base direction can
// legitimately produce zero out.
func (k Keeper) settleSwap(
	ctx context.Context,
	trader sdk.AccAddress,
	denomIn string, amountIn math.Int,
	denomOut string, amountOut math.Int,
) error {
	coinsIn := sdk.NewCoins(sdk.NewCoin(denomIn, amountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, coinsIn); err != nil {
		return err
	}

	if amountOut.IsZero() {
		return nil
	}
	coinsOut := sdk.NewCoins(sdk.NewCoin(denomOut, amountOut))
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader, coinsOut)
}

func (k Keeper) emitSwapEvent(
	ctx context.Context,
	eventType string,
	market types.Market,
	trader sdk.AccAddress,
	amountIn, amountOut math.Int,
) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyMarketID, strconv.FormatUint(market.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyBaseToken, market.BaseToken),
			sdk.NewAttribute(types.AttributeKeyQuoteToken, market.QuoteToken),
			sdk.NewAttribute(types.AttributeKeyExchangeRate, market.ExchangeRate.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		),
	)
}
