package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Market is an immutable record pairing a base and quote token denom with a
// fixed integer exchange rate: quote amount = base amount * exchange rate.
// Once stored, none of its fields ever change; there is no update or delete.
type Market struct {
	Id           uint64   `json:"id"`
	BaseToken    string   `json:"base_token"`
	QuoteToken   string   `json:"quote_token"`
	ExchangeRate math.Int `json:"exchange_rate"`
}

// NewMarket constructs a market record.
func NewMarket(id uint64, baseToken, quoteToken string, exchangeRate math.Int) Market {
	return Market{
		Id:           id,
		BaseToken:    baseToken,
		QuoteToken:   quoteToken,
		ExchangeRate: exchangeRate,
	}
}

// Validate checks the registry field invariants: market ids start at 1,
// token denoms are non-empty and well-formed, and the rate is positive.
func (m Market) Validate() error {
	if m.Id == 0 {
		return ErrOutOfBoundIndex.Wrap("market id cannot be zero")
	}

	if m.BaseToken == "" {
		return ErrEmptyBaseToken
	}

	if m.QuoteToken == "" {
		return ErrEmptyQuoteToken
	}

	if err := sdk.ValidateDenom(m.BaseToken); err != nil {
		return ErrEmptyBaseToken.Wrapf("invalid base token denom: %v", err)
	}

	if err := sdk.ValidateDenom(m.QuoteToken); err != nil {
		return ErrEmptyQuoteToken.Wrapf("invalid quote token denom: %v", err)
	}

	if m.ExchangeRate.IsNil() || !m.ExchangeRate.IsPositive() {
		return ErrZeroExchangeRate.Wrap("exchange rate must be positive")
	}

	return nil
}

func (m Market) String() string {
	return fmt.Sprintf("Market{Id: %d, BaseToken: %s, QuoteToken: %s, ExchangeRate: %s}",
		m.Id, m.BaseToken, m.QuoteToken, m.ExchangeRate)
}
