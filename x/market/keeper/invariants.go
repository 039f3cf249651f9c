package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// RegisterInvariants registers all market invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "market-counter", MarketCounterInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pair-index", PairIndexInvariant(k))
	ir.RegisterRoute(types.ModuleName, "market-records", MarketRecordsInvariant(k))
}

// AllInvariants runs all invariants of the market module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := MarketCounterInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PairIndexInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return MarketRecordsInvariant(k)(ctx)
	}
}

// MarketCounterInvariant checks that market ids are dense: before
// initialization the counter is zero with no records, after it the records
// occupy exactly the ids 1 through counter-1.
func MarketCounterInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		next := k.GetNextMarketID(ctx)
		markets, err := k.GetAllMarkets(ctx)
		if err != nil {
			return sdk.FormatInvariant(
				types.ModuleName, "market-counter",
				fmt.Sprintf("failed to load markets: %v", err),
			), true
		}

		if !k.IsInitialized(ctx) {
			if next != 0 {
				count++
				msg += fmt.Sprintf("uninitialized registry has counter %d\n", next)
			}
			if len(markets) != 0 {
				count++
				msg += fmt.Sprintf("uninitialized registry has %d market records\n", len(markets))
			}
		} else {
			if next == 0 {
				count++
				msg += "initialized registry has zero counter\n"
			} else if uint64(len(markets)) != next-1 {
				count++
				msg += fmt.Sprintf("counter %d implies %d markets, found %d\n",
					next, next-1, len(markets))
			}
			for i, market := range markets {
				if market.Id != uint64(i)+1 {
					count++
					msg += fmt.Sprintf("market at position %d has id %d\n", i, market.Id)
				}
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "market-counter",
			fmt.Sprintf("found %d counter violations\n%s", count, msg),
		), broken
	}
}

// PairIndexInvariant checks that the ordered pair index and the market
// records form a bijection.
func PairIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		markets, err := k.GetAllMarkets(ctx)
		if err != nil {
			return sdk.FormatInvariant(
				types.ModuleName, "pair-index",
				fmt.Sprintf("failed to load markets: %v", err),
			), true
		}

		seen := make(map[string]uint64, len(markets))
		for _, market := range markets {
			pair := string(types.MarketByTokensKey(market.BaseToken, market.QuoteToken))
			if prev, ok := seen[pair]; ok {
				count++
				msg += fmt.Sprintf("pair %s/%s covered by markets %d and %d\n",
					market.BaseToken, market.QuoteToken, prev, market.Id)
				continue
			}
			seen[pair] = market.Id

			indexed := k.GetMarketIDByTokens(ctx, market.BaseToken, market.QuoteToken)
			if indexed != market.Id {
				count++
				msg += fmt.Sprintf("pair %s/%s indexes market %d, record has id %d\n",
					market.BaseToken, market.QuoteToken, indexed, market.Id)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pair-index",
			fmt.Sprintf("found %d pair index violations\n%s", count, msg),
		), broken
	}
}

// MarketRecordsInvariant checks that every stored market record is
// well-formed: nonzero id, nonempty denoms and a positive rate. Rates never
// change after creation, so a violation here means corrupt state.
func MarketRecordsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		markets, err := k.GetAllMarkets(ctx)
		if err != nil {
			return sdk.FormatInvariant(
				types.ModuleName, "market-records",
				fmt.Sprintf("failed to load markets: %v", err),
			), true
		}

		for _, market := range markets {
			if err := market.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("market %d: %v\n", market.Id, err)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "market-records",
			fmt.Sprintf("found %d malformed market records\n%s", count, msg),
		), broken
	}
}
