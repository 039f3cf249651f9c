package types

// Event types emitted by the market module. Each successful mutating
// operation emits exactly one module event, append-only and observable by
// external indexers.
const (
	EventTypeInitialized      = "market_registry_initialized"
	EventTypeMarketCreated    = "market_created"
	EventTypeSwapBaseForQuote = "swapped_base_for_quote"
	EventTypeSwapQuoteForBase = "swapped_quote_for_base"
)

// Event attribute keys
const (
	AttributeKeyMarketID     = "market_id"
	AttributeKeyBaseToken    = "base_token"
	AttributeKeyQuoteToken   = "quote_token"
	AttributeKeyExchangeRate = "exchange_rate"
	AttributeKeyAmountIn     = "amount_in"
	AttributeKeyAmountOut    = "amount_out"
	AttributeKeyCreator      = "creator"
	AttributeKeyTrader       = "trader"
)
