package keeper

import (
	"context"
	"fmt"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// InitGenesis initializes the market module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid market genesis: %w", err)
	}

	if genState.Initialized {
		k.setInitialized(ctx)
		k.setNextMarketID(ctx, genState.NextMarketId)
	}

	for _, market := range genState.Markets {
		if err := k.SetMarket(ctx, market); err != nil {
			return fmt.Errorf("failed to set market %d: %w", market.Id, err)
		}
		k.setMarketIDByTokens(ctx, market.BaseToken, market.QuoteToken, market.Id)
	}

	return nil
}

// ExportGenesis returns the market module's state as a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	markets, err := k.GetAllMarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export markets: %w", err)
	}

	return &types.GenesisState{
		Initialized:  k.IsInitialized(ctx),
		NextMarketId: k.GetNextMarketID(ctx),
		Markets:      markets,
	}, nil
}
