package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

var _ types.QueryServer = Keeper{}

// InitializationStatus reports whether the registry has been initialized
func (k Keeper) InitializationStatus(goCtx context.Context, req *types.QueryInitializationStatusRequest) (*types.QueryInitializationStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	return &types.QueryInitializationStatusResponse{
		Initialized: k.IsInitialized(goCtx),
	}, nil
}

// CurrentMarketIndex returns the market id counter. Zero means the registry
// has not been initialized yet.
func (k Keeper) CurrentMarketIndex(goCtx context.Context, req *types.QueryCurrentMarketIndexRequest) (*types.QueryCurrentMarketIndexResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	return &types.QueryCurrentMarketIndexResponse{
		MarketIndex: k.GetNextMarketID(goCtx),
	}, nil
}

// ExchangeRate returns the fixed rate of the ordered pair's market, or zero
// when no market covers the exact ordered pair.
func (k Keeper) ExchangeRate(goCtx context.Context, req *types.QueryExchangeRateRequest) (*types.QueryExchangeRateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.BaseToken == "" || req.QuoteToken == "" {
		return nil, status.Error(codes.InvalidArgument, "token denoms cannot be empty")
	}

	rate := math.ZeroInt()
	if marketID := k.GetMarketIDByTokens(goCtx, req.BaseToken, req.QuoteToken); marketID != 0 {
		if market, found := k.GetMarket(goCtx, marketID); found {
			rate = market.ExchangeRate
		}
	}

	return &types.QueryExchangeRateResponse{
		ExchangeRate: rate,
	}, nil
}

// MarketID resolves an ordered token pair to its market id. Zero means no
// market covers the exact ordered pair.
func (k Keeper) MarketID(goCtx context.Context, req *types.QueryMarketIDRequest) (*types.QueryMarketIDResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.BaseToken == "" || req.QuoteToken == "" {
		return nil, status.Error(codes.InvalidArgument, "token denoms cannot be empty")
	}

	return &types.QueryMarketIDResponse{
		MarketId: k.GetMarketIDByTokens(goCtx, req.BaseToken, req.QuoteToken),
	}, nil
}

// MarketByTokens returns the market record covering an ordered token pair
func (k Keeper) MarketByTokens(goCtx context.Context, req *types.QueryMarketByTokensRequest) (*types.QueryMarketByTokensResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.BaseToken == "" || req.QuoteToken == "" {
		return nil, status.Error(codes.InvalidArgument, "token denoms cannot be empty")
	}

	marketID := k.GetMarketIDByTokens(goCtx, req.BaseToken, req.QuoteToken)
	if marketID == 0 {
		return nil, status.Errorf(codes.NotFound, "no market for pair %s/%s", req.BaseToken, req.QuoteToken)
	}
	market, found := k.GetMarket(goCtx, marketID)
	if !found {
		return nil, status.Errorf(codes.NotFound, "market %d not found", marketID)
	}

	return &types.QueryMarketByTokensResponse{
		Market: market,
	}, nil
}

// MarketByID returns the market record at a given id. Valid ids run from 1
// up to but excluding the current counter value.
func (k Keeper) MarketByID(goCtx context.Context, req *types.QueryMarketByIDRequest) (*types.QueryMarketByIDResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	market, err := k.FetchMarket(goCtx, req.MarketId)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return &types.QueryMarketByIDResponse{
		Market: market,
	}, nil
}

// Markets returns all market records with offset pagination
func (k Keeper) Markets(goCtx context.Context, req *types.QueryMarketsRequest) (*types.QueryMarketsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	allMarkets, err := k.GetAllMarkets(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	markets := allMarkets
	pageRes := &query.PageResponse{Total: uint64(len(allMarkets))}

	if req.Pagination != nil {
		offset := req.Pagination.Offset
		limit := req.Pagination.Limit
		if limit == 0 {
			limit = 100
		}
		// Past-the-end offsets yield an empty page, not a restart.
		if offset > uint64(len(allMarkets)) {
			offset = uint64(len(allMarkets))
		}
		end := offset + limit
		if end > uint64(len(allMarkets)) {
			end = uint64(len(allMarkets))
		}
		markets = allMarkets[offset:end]
		if end < uint64(len(allMarkets)) {
			nextKey := make([]byte, 8)
			binary.BigEndian.PutUint64(nextKey, end)
			pageRes.NextKey = nextKey
		}
	}

	return &types.QueryMarketsResponse{
		Markets:    markets,
		Pagination: pageRes,
	}, nil
}
