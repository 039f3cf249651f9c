package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// Keeper of the market store. It owns the market registry: the one-time
// initialization flag, the market id counter, the market records, and the
// token-pair index. All mutation flows through the keeper, so the host
// chain's transactional store gives every entry point all-or-nothing
// semantics.
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper

	// module account address, computed once at construction
	moduleAddress sdk.AccAddress
}

// NewKeeper creates a new market Keeper instance
func NewKeeper(key storetypes.StoreKey, bankKeeper types.BankKeeper) Keeper {
	return Keeper{
		storeKey:      key,
		bankKeeper:    bankKeeper,
		moduleAddress: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// getStore returns the KVStore for the market module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// GetModuleAddress returns the module account address holding token custody
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}
