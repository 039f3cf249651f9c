package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/fixedswap-chain/fixedswap/x/market/keeper"
	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// MarketKeeper creates a test keeper for the market module backed by an
// in-memory multistore and a map-backed bank keeper.
func MarketKeeper(t testing.TB) (keeper.Keeper, *BankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bankKeeper := NewBankKeeper()
	k := keeper.NewKeeper(storeKey, bankKeeper)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bankKeeper, ctx
}

// BankKeeper is a map-backed double for the bank module, tracking balances
// for regular accounts and module accounts alike.
type BankKeeper struct {
	balances map[string]sdk.Coins
}

// NewBankKeeper creates an empty in-memory bank keeper
func NewBankKeeper() *BankKeeper {
	return &BankKeeper{
		balances: make(map[string]sdk.Coins),
	}
}

var _ types.BankKeeper = (*BankKeeper)(nil)

// FundAccount credits an account with coins out of thin air
func (bk *BankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	bk.balances[addr.String()] = bk.balances[addr.String()].Add(coins...)
}

// GetBalance returns the balance of a single denom for an account
func (bk *BankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	balance := bk.balances[addr.String()]
	return sdk.NewCoin(denom, balance.AmountOf(denom))
}

// SendCoinsFromAccountToModule moves coins from an account into a module account
func (bk *BankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return bk.send(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

// SendCoinsFromModuleToAccount moves coins from a module account to an account
func (bk *BankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return bk.send(authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (bk *BankKeeper) send(from, to sdk.AccAddress, amt sdk.Coins) error {
	fromBalance := bk.balances[from.String()]
	newFrom, negative := fromBalance.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, fromBalance, amt)
	}
	bk.balances[from.String()] = newFrom
	bk.balances[to.String()] = bk.balances[to.String()].Add(amt...)
	return nil
}

// TestAddress derives a deterministic bech32 account address for tests
func TestAddress(index byte) sdk.AccAddress {
	addr := make([]byte, 20)
	addr[0] = index
	return sdk.AccAddress(addr)
}

// IntFromString parses an integer literal, failing the test on bad input
func IntFromString(t testing.TB, s string) math.Int {
	v, ok := math.NewIntFromString(s)
	require.True(t, ok, "invalid integer literal %q", s)
	return v
}
