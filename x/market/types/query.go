package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the market module query server interface. All methods
// are pure, side-effect-free projections over the registry state.
type QueryServer interface {
	InitializationStatus(context.Context, *QueryInitializationStatusRequest) (*QueryInitializationStatusResponse, error)
	CurrentMarketIndex(context.Context, *QueryCurrentMarketIndexRequest) (*QueryCurrentMarketIndexResponse, error)
	ExchangeRate(context.Context, *QueryExchangeRateRequest) (*QueryExchangeRateResponse, error)
	MarketID(context.Context, *QueryMarketIDRequest) (*QueryMarketIDResponse, error)
	MarketByTokens(context.Context, *QueryMarketByTokensRequest) (*QueryMarketByTokensResponse, error)
	MarketByID(context.Context, *QueryMarketByIDRequest) (*QueryMarketByIDResponse, error)
	Markets(context.Context, *QueryMarketsRequest) (*QueryMarketsResponse, error)
}

// QueryInitializationStatusRequest queries whether the registry has been initialized
type QueryInitializationStatusRequest struct{}

// QueryInitializationStatusResponse carries the initialization flag
type QueryInitializationStatusResponse struct {
	Initialized bool `json:"initialized"`
}

// QueryCurrentMarketIndexRequest queries the market id counter
type QueryCurrentMarketIndexRequest struct{}

// QueryCurrentMarketIndexResponse carries the next market id; 0 means the
// registry has not been initialized yet
type QueryCurrentMarketIndexResponse struct {
	MarketIndex uint64 `json:"market_index"`
}

// QueryExchangeRateRequest queries the exchange rate of an ordered pair
type QueryExchangeRateRequest struct {
	BaseToken  string `json:"base_token"`
	QuoteToken string `json:"quote_token"`
}

// QueryExchangeRateResponse carries the rate; zero when no market exists
// for the exact ordered pair
type QueryExchangeRateResponse struct {
	ExchangeRate math.Int `json:"exchange_rate"`
}

// QueryMarketIDRequest resolves an ordered token pair to a market id
type QueryMarketIDRequest struct {
	BaseToken  string `json:"base_token"`
	QuoteToken string `json:"quote_token"`
}

// QueryMarketIDResponse carries the market id; 0 means absent
type QueryMarketIDResponse struct {
	MarketId uint64 `json:"market_id"`
}

// QueryMarketByTokensRequest queries a market record by its ordered pair
type QueryMarketByTokensRequest struct {
	BaseToken  string `json:"base_token"`
	QuoteToken string `json:"quote_token"`
}

// QueryMarketByTokensResponse carries the market record
type QueryMarketByTokensResponse struct {
	Market Market `json:"market"`
}

// QueryMarketByIDRequest queries a market record by id
type QueryMarketByIDRequest struct {
	MarketId uint64 `json:"market_id"`
}

// QueryMarketByIDResponse carries the market record
type QueryMarketByIDResponse struct {
	Market Market `json:"market"`
}

// QueryMarketsRequest queries all markets with pagination
type QueryMarketsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryMarketsResponse carries a page of market records
type QueryMarketsResponse struct {
	Markets    []Market            `json:"markets"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

func (m *QueryInitializationStatusRequest) Reset()        { *m = QueryInitializationStatusRequest{} }
func (m *QueryInitializationStatusRequest) ProtoMessage() {}
func (m QueryInitializationStatusRequest) String() string { return "QueryInitializationStatusRequest{}" }

func (m *QueryInitializationStatusResponse) Reset()        { *m = QueryInitializationStatusResponse{} }
func (m *QueryInitializationStatusResponse) ProtoMessage() {}
func (m QueryInitializationStatusResponse) String() string {
	return fmt.Sprintf("QueryInitializationStatusResponse{%t}", m.Initialized)
}

func (m *QueryCurrentMarketIndexRequest) Reset()        { *m = QueryCurrentMarketIndexRequest{} }
func (m *QueryCurrentMarketIndexRequest) ProtoMessage() {}
func (m QueryCurrentMarketIndexRequest) String() string { return "QueryCurrentMarketIndexRequest{}" }

func (m *QueryCurrentMarketIndexResponse) Reset()        { *m = QueryCurrentMarketIndexResponse{} }
func (m *QueryCurrentMarketIndexResponse) ProtoMessage() {}
func (m QueryCurrentMarketIndexResponse) String() string {
	return fmt.Sprintf("QueryCurrentMarketIndexResponse{%d}", m.MarketIndex)
}

func (m *QueryExchangeRateRequest) Reset()        { *m = QueryExchangeRateRequest{} }
func (m *QueryExchangeRateRequest) ProtoMessage() {}
func (m QueryExchangeRateRequest) String() string {
	return fmt.Sprintf("QueryExchangeRateRequest{%s/%s}", m.BaseToken, m.QuoteToken)
}

func (m *QueryExchangeRateResponse) Reset()        { *m = QueryExchangeRateResponse{} }
func (m *QueryExchangeRateResponse) ProtoMessage() {}
func (m QueryExchangeRateResponse) String() string {
	return fmt.Sprintf("QueryExchangeRateResponse{%s}", m.ExchangeRate)
}

func (m *QueryMarketIDRequest) Reset()        { *m = QueryMarketIDRequest{} }
func (m *QueryMarketIDRequest) ProtoMessage() {}
func (m QueryMarketIDRequest) String() string {
	return fmt.Sprintf("QueryMarketIDRequest{%s/%s}", m.BaseToken, m.QuoteToken)
}

func (m *QueryMarketIDResponse) Reset()        { *m = QueryMarketIDResponse{} }
func (m *QueryMarketIDResponse) ProtoMessage() {}
func (m QueryMarketIDResponse) String() string {
	return fmt.Sprintf("QueryMarketIDResponse{%d}", m.MarketId)
}

func (m *QueryMarketByTokensRequest) Reset()        { *m = QueryMarketByTokensRequest{} }
func (m *QueryMarketByTokensRequest) ProtoMessage() {}
func (m QueryMarketByTokensRequest) String() string {
	return fmt.Sprintf("QueryMarketByTokensRequest{%s/%s}", m.BaseToken, m.QuoteToken)
}

func (m *QueryMarketByTokensResponse) Reset()        { *m = QueryMarketByTokensResponse{} }
func (m *QueryMarketByTokensResponse) ProtoMessage() {}
func (m QueryMarketByTokensResponse) String() string {
	return fmt.Sprintf("QueryMarketByTokensResponse{%s}", m.Market)
}

func (m *QueryMarketByIDRequest) Reset()        { *m = QueryMarketByIDRequest{} }
func (m *QueryMarketByIDRequest) ProtoMessage() {}
func (m QueryMarketByIDRequest) String() string {
	return fmt.Sprintf("QueryMarketByIDRequest{%d}", m.MarketId)
}

func (m *QueryMarketByIDResponse) Reset()        { *m = QueryMarketByIDResponse{} }
func (m *QueryMarketByIDResponse) ProtoMessage() {}
func (m QueryMarketByIDResponse) String() string {
	return fmt.Sprintf("QueryMarketByIDResponse{%s}", m.Market)
}

func (m *QueryMarketsRequest) Reset()        { *m = QueryMarketsRequest{} }
func (m *QueryMarketsRequest) ProtoMessage() {}
func (m QueryMarketsRequest) String() string { return "QueryMarketsRequest{}" }

func (m *QueryMarketsResponse) Reset()        { *m = QueryMarketsResponse{} }
func (m *QueryMarketsResponse) ProtoMessage() {}
func (m QueryMarketsResponse) String() string {
	return fmt.Sprintf("QueryMarketsResponse{%d markets}", len(m.Markets))
}
