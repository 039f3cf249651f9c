package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for the market Query service.
type QueryClient interface {
	InitializationStatus(ctx context.Context, in *QueryInitializationStatusRequest, opts ...grpc.CallOption) (*QueryInitializationStatusResponse, error)
	CurrentMarketIndex(ctx context.Context, in *QueryCurrentMarketIndexRequest, opts ...grpc.CallOption) (*QueryCurrentMarketIndexResponse, error)
	ExchangeRate(ctx context.Context, in *QueryExchangeRateRequest, opts ...grpc.CallOption) (*QueryExchangeRateResponse, error)
	MarketID(ctx context.Context, in *QueryMarketIDRequest, opts ...grpc.CallOption) (*QueryMarketIDResponse, error)
	MarketByTokens(ctx context.Context, in *QueryMarketByTokensRequest, opts ...grpc.CallOption) (*QueryMarketByTokensResponse, error)
	MarketByID(ctx context.Context, in *QueryMarketByIDRequest, opts ...grpc.CallOption) (*QueryMarketByIDResponse, error)
	Markets(ctx context.Context, in *QueryMarketsRequest, opts ...grpc.CallOption) (*QueryMarketsResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) InitializationStatus(ctx context.Context, in *QueryInitializationStatusRequest, opts ...grpc.CallOption) (*QueryInitializationStatusResponse, error) {
	out := new(QueryInitializationStatusResponse)
	err := c.cc.Invoke(ctx, "/fixedswap.market.v1.Query/InitializationStatus", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) CurrentMarketIndex(ctx context.Context, in *QueryCurrentMarketIndexRequest, opts ...grpc.CallOption) (*QueryCurrentMarketIndexResponse, error) {
	out := new(QueryCurrentMarketIndexResponse)
	err := c.cc.Invoke(ctx, "/fixedswap.market.v1.Query/CurrentMarketIndex", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) ExchangeRate(ctx context.Context, in *QueryExchangeRateRequest, opts ...grpc.CallOption) (*QueryExchangeRateResponse, error) {
	out := new(QueryExchangeRateResponse)
	err := c.cc.Invoke(ctx, "/fixedswap.market.v1.Query/ExchangeRate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) MarketID(ctx context.Context, in *QueryMarketIDRequest, opts ...grpc.CallOption) (*QueryMarketIDResponse, error) {
	out := new(QueryMarketIDResponse)
	err := c.cc.Invoke(ctx, "/fixedswap.market.v1.Query/MarketID", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) MarketByTokens(ctx context.Context, in *QueryMarketByTokensRequest, opts ...grpc.CallOption) (*QueryMarketByTokensResponse, error) {
	out := new(QueryMarketByTokensResponse)
	err := c.cc.Invoke(ctx, "/fixedswap.market.v1.Query/MarketByTokens", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) MarketByID(ctx context.Context, in *QueryMarketByIDRequest, opts ...grpc.CallOption) (*QueryMarketByIDResponse, error) {
	out := new(QueryMarketByIDResponse)
	err := c.cc.Invoke(ctx, "/fixedswap.market.v1.Query/MarketByID", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Markets(ctx context.Context, in *QueryMarketsRequest, opts ...grpc.CallOption) (*QueryMarketsResponse, error) {
	out := new(QueryMarketsResponse)
	err := c.cc.Invoke(ctx, "/fixedswap.market.v1.Query/Markets", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
