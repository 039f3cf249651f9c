package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the market MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Initialize handles the one-time registry initialization
func (ms msgServer) Initialize(goCtx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Initialize: validate: %w", err)
	}

	if err := ms.Keeper.Initialize(goCtx); err != nil {
		return nil, fmt.Errorf("Initialize: %w", err)
	}

	initializeCounter.Inc()

	return &types.MsgInitializeResponse{}, nil
}

// CreateMarket handles the registration of a new fixed-rate market
func (ms msgServer) CreateMarket(goCtx context.Context, msg *types.MsgCreateMarket) (*types.MsgCreateMarketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateMarket: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreateMarket: invalid creator address: %w", err)
	}

	marketID, marketIndex, err := ms.Keeper.CreateMarket(
		goCtx, creator, msg.BaseToken, msg.QuoteToken,
		msg.ExchangeRate, msg.BaseAmount, msg.QuoteAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("CreateMarket: %w", err)
	}

	marketsCreatedCounter.Inc()

	return &types.MsgCreateMarketResponse{
		MarketId:    marketID,
		MarketIndex: marketIndex,
	}, nil
}

// SwapBaseForQuote handles a base-to-quote swap at the market's fixed rate
func (ms msgServer) SwapBaseForQuote(goCtx context.Context, msg *types.MsgSwapBaseForQuote) (*types.MsgSwapBaseForQuoteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapBaseForQuote: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapBaseForQuote: invalid trader address: %w", err)
	}

	amountOut, err := ms.Keeper.SwapBaseForQuote(goCtx, trader, msg.BaseToken, msg.QuoteToken, msg.BaseAmount)
	if err != nil {
		return nil, fmt.Errorf("SwapBaseForQuote: %w", err)
	}

	swapCounter.WithLabelValues(swapDirectionBaseForQuote).Inc()

	return &types.MsgSwapBaseForQuoteResponse{
		AmountOut: amountOut,
	}, nil
}

// SwapQuoteForBase handles a quote-to-base swap at the market's fixed rate
func (ms msgServer) SwapQuoteForBase(goCtx context.Context, msg *types.MsgSwapQuoteForBase) (*types.MsgSwapQuoteForBaseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapQuoteForBase: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapQuoteForBase: invalid trader address: %w", err)
	}

	amountOut, err := ms.Keeper.SwapQuoteForBase(goCtx, trader, msg.BaseToken, msg.QuoteToken, msg.QuoteAmount)
	if err != nil {
		return nil, fmt.Errorf("SwapQuoteForBase: %w", err)
	}

	swapCounter.WithLabelValues(swapDirectionQuoteForBase).Inc()

	return &types.MsgSwapQuoteForBaseResponse{
		AmountOut: amountOut,
	}, nil
}
