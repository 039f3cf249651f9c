package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// IsInitialized reports whether the one-time initialization has happened
func (k Keeper) IsInitialized(ctx context.Context) bool {
	store := k.getStore(ctx)
	bz := store.Get(types.InitializedKey)
	return len(bz) == 1 && bz[0] == 1
}

func (k Keeper) setInitialized(ctx context.Context) {
	store := k.getStore(ctx)
	store.Set(types.InitializedKey, []byte{1})
}

// GetNextMarketID returns the market id counter without advancing it.
// Zero means the registry has not been initialized.
func (k Keeper) GetNextMarketID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.NextMarketIDKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setNextMarketID(ctx context.Context, marketID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, marketID)
	store.Set(types.NextMarketIDKey, bz)
}

// Initialize performs the one-time registry initialization: it flips the
// flag, seeds the id counter at 1, and emits the initialization event.
// A second call fails with ErrAlreadyInitialized.
func (k Keeper) Initialize(ctx context.Context) error {
	if k.IsInitialized(ctx) {
		return types.ErrAlreadyInitialized
	}

	k.setInitialized(ctx)
	k.setNextMarketID(ctx, 1)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeInitialized),
	)

	k.Logger(ctx).Info("market registry initialized")

	return nil
}

// GetMarket retrieves a market record by id
func (k Keeper) GetMarket(ctx context.Context, marketID uint64) (types.Market, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.MarketKey(marketID))
	if bz == nil {
		return types.Market{}, false
	}

	market, err := decodeMarket(bz)
	if err != nil {
		// A record that was written by SetMarket cannot fail to decode.
		panic(fmt.Errorf("corrupt market record %d: %w", marketID, err))
	}
	return market, true
}

// SetMarket saves a market record to the store
func (k Keeper) SetMarket(ctx context.Context, market types.Market) error {
	bz, err := encodeMarket(market)
	if err != nil {
		return fmt.Errorf("SetMarket: encode market %d: %w", market.Id, err)
	}

	store := k.getStore(ctx)
	store.Set(types.MarketKey(market.Id), bz)
	return nil
}

// GetMarketIDByTokens resolves an ordered (base, quote) pair to a market
// id. Zero means no market exists for the exact ordered pair; the reverse
// pair is independent. Total function, no error.
func (k Keeper) GetMarketIDByTokens(ctx context.Context, baseToken, quoteToken string) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.MarketByTokensKey(baseToken, quoteToken))
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// setMarketIDByTokens records a pair -> id mapping. Unconditional
// overwrite; CreateMarket only calls it after a zero lookup.
func (k Keeper) setMarketIDByTokens(ctx context.Context, baseToken, quoteToken string, marketID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, marketID)
	store.Set(types.MarketByTokensKey(baseToken, quoteToken), bz)
}

// IterateMarkets iterates over all market records in id order
func (k Keeper) IterateMarkets(ctx context.Context, cb func(market types.Market) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.MarketKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		market, err := decodeMarket(iterator.Value())
		if err != nil {
			return fmt.Errorf("IterateMarkets: decode market: %w", err)
		}
		if cb(market) {
			break
		}
	}
	return nil
}

// GetAllMarkets returns every market record in id order
func (k Keeper) GetAllMarkets(ctx context.Context) ([]types.Market, error) {
	markets := make([]types.Market, 0)
	err := k.IterateMarkets(ctx, func(market types.Market) bool {
		markets = append(markets, market)
		return false
	})
	return markets, err
}

// Market records are stored hand-encoded: big-endian id, then
// length-prefixed denoms and rate bytes. The module's types are written by
// hand, so there is no generated codec for them.

func encodeMarket(market types.Market) ([]byte, error) {
	rateBz, err := market.ExchangeRate.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal exchange rate: %w", err)
	}

	bz := make([]byte, 0, 8+2+len(market.BaseToken)+2+len(market.QuoteToken)+2+len(rateBz))
	bz = binary.BigEndian.AppendUint64(bz, market.Id)
	bz = binary.BigEndian.AppendUint16(bz, uint16(len(market.BaseToken)))
	bz = append(bz, market.BaseToken...)
	bz = binary.BigEndian.AppendUint16(bz, uint16(len(market.QuoteToken)))
	bz = append(bz, market.QuoteToken...)
	bz = binary.BigEndian.AppendUint16(bz, uint16(len(rateBz)))
	bz = append(bz, rateBz...)
	return bz, nil
}

func decodeMarket(bz []byte) (types.Market, error) {
	var market types.Market

	if len(bz) < 8 {
		return market, fmt.Errorf("record truncated")
	}
	market.Id = binary.BigEndian.Uint64(bz)
	bz = bz[8:]

	base, bz, err := readLengthPrefixed(bz)
	if err != nil {
		return market, fmt.Errorf("base token: %w", err)
	}
	market.BaseToken = string(base)

	quote, bz, err := readLengthPrefixed(bz)
	if err != nil {
		return market, fmt.Errorf("quote token: %w", err)
	}
	market.QuoteToken = string(quote)

	rateBz, _, err := readLengthPrefixed(bz)
	if err != nil {
		return market, fmt.Errorf("exchange rate: %w", err)
	}
	if err := market.ExchangeRate.Unmarshal(rateBz); err != nil {
		return market, fmt.Errorf("unmarshal exchange rate: %w", err)
	}

	return market, nil
}

func readLengthPrefixed(bz []byte) ([]byte, []byte, error) {
	if len(bz) < 2 {
		return nil, nil, fmt.Errorf("length prefix truncated")
	}
	n := int(binary.BigEndian.Uint16(bz))
	bz = bz[2:]
	if len(bz) < n {
		return nil, nil, fmt.Errorf("value truncated: want %d bytes, have %d", n, len(bz))
	}
	return bz[:n], bz[n:], nil
}
