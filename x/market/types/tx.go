package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
)

// MsgServer defines the market module message server interface
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)
	CreateMarket(context.Context, *MsgCreateMarket) (*MsgCreateMarketResponse, error)
	SwapBaseForQuote(context.Context, *MsgSwapBaseForQuote) (*MsgSwapBaseForQuoteResponse, error)
	SwapQuoteForBase(context.Context, *MsgSwapQuoteForBase) (*MsgSwapQuoteForBaseResponse, error)
}

// MsgInitializeResponse defines the response for Initialize
type MsgInitializeResponse struct{}

// MsgCreateMarketResponse defines the response for CreateMarket.
// MarketId is the identifier assigned to the new market; MarketIndex is the
// advanced counter value, always MarketId + 1.
type MsgCreateMarketResponse struct {
	MarketId    uint64 `json:"market_id"`
	MarketIndex uint64 `json:"market_index"`
}

// MsgSwapBaseForQuoteResponse defines the response for SwapBaseForQuote
type MsgSwapBaseForQuoteResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgSwapQuoteForBaseResponse defines the response for SwapQuoteForBase
type MsgSwapQuoteForBaseResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

func (m *MsgInitializeResponse) Reset()                { *m = MsgInitializeResponse{} }
func (m *MsgInitializeResponse) ProtoMessage()         {}
func (m MsgInitializeResponse) String() string         { return "MsgInitializeResponse{}" }
func (m *MsgCreateMarketResponse) Reset()              { *m = MsgCreateMarketResponse{} }
func (m *MsgCreateMarketResponse) ProtoMessage()       {}
func (m MsgCreateMarketResponse) String() string       { return fmt.Sprintf("MsgCreateMarketResponse{%d}", m.MarketId) }
func (m *MsgSwapBaseForQuoteResponse) Reset()          { *m = MsgSwapBaseForQuoteResponse{} }
func (m *MsgSwapBaseForQuoteResponse) ProtoMessage()   {}
func (m MsgSwapBaseForQuoteResponse) String() string   { return fmt.Sprintf("MsgSwapBaseForQuoteResponse{%s}", m.AmountOut) }
func (m *MsgSwapQuoteForBaseResponse) Reset()          { *m = MsgSwapQuoteForBaseResponse{} }
func (m *MsgSwapQuoteForBaseResponse) ProtoMessage()   {}
func (m MsgSwapQuoteForBaseResponse) String() string   { return fmt.Sprintf("MsgSwapQuoteForBaseResponse{%s}", m.AmountOut) }
