package types

import (
	"fmt"
)

// GenesisState holds the entire durable state of the market module: the
// initialization flag, the market id counter, and every market record. The
// pair index is rebuilt from the records on import.
type GenesisState struct {
	Initialized  bool     `json:"initialized"`
	NextMarketId uint64   `json:"next_market_id"`
	Markets      []Market `json:"markets"`
}

// DefaultGenesis returns the default genesis state: an uninitialized
// registry with no markets.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Initialized:  false,
		NextMarketId: 0,
		Markets:      []Market{},
	}
}

// Validate ensures the genesis state satisfies the registry invariants:
// the counter is zero exactly until initialization, market ids form the
// dense sequence 1..next-1, every record is well-formed, and no ordered
// token pair appears twice.
func (gs GenesisState) Validate() error {
	if !gs.Initialized {
		if gs.NextMarketId != 0 {
			return fmt.Errorf("next market id must be 0 before initialization, got %d", gs.NextMarketId)
		}
		if len(gs.Markets) != 0 {
			return fmt.Errorf("uninitialized registry cannot hold markets")
		}
		return nil
	}

	if gs.NextMarketId == 0 {
		return fmt.Errorf("next market id must be positive after initialization")
	}

	if want := gs.NextMarketId - 1; uint64(len(gs.Markets)) != want {
		return fmt.Errorf("market count %d does not match counter (want %d)", len(gs.Markets), want)
	}

	seenIDs := make(map[uint64]struct{}, len(gs.Markets))
	seenPairs := make(map[string]struct{}, len(gs.Markets))

	for _, market := range gs.Markets {
		if err := market.Validate(); err != nil {
			return fmt.Errorf("invalid market %d: %w", market.Id, err)
		}

		if market.Id >= gs.NextMarketId {
			return fmt.Errorf("market id %d outside [1, %d)", market.Id, gs.NextMarketId)
		}

		if _, ok := seenIDs[market.Id]; ok {
			return fmt.Errorf("duplicate market id %d", market.Id)
		}
		seenIDs[market.Id] = struct{}{}

		// Keyed the same way as the store index so denoms containing
		// separators cannot alias another pair.
		pair := string(MarketByTokensKey(market.BaseToken, market.QuoteToken))
		if _, ok := seenPairs[pair]; ok {
			return fmt.Errorf("duplicate market for token pair %s/%s", market.BaseToken, market.QuoteToken)
		}
		seenPairs[pair] = struct{}{}
	}

	return nil
}
