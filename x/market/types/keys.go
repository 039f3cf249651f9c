package types

import (
	"encoding/binary"
)

const (
	// ModuleName defines the module name
	ModuleName = "market"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	// InitializedKey is the key for the one-time initialization flag
	InitializedKey = []byte{0x01}

	// NextMarketIDKey is the key for the market id counter
	NextMarketIDKey = []byte{0x02}

	// MarketKeyPrefix is the prefix for market records keyed by id
	MarketKeyPrefix = []byte{0x03}

	// MarketByTokensKeyPrefix is the prefix for the (base, quote) pair index
	MarketByTokensKeyPrefix = []byte{0x04}
)

// MarketKey returns the store key for a market by id
func MarketKey(marketID uint64) []byte {
	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, marketID)
	return append(MarketKeyPrefix, idBytes...)
}

// MarketByTokensKey returns the store key indexing a market by its ordered
// token pair. Both denoms are length-prefixed: denoms may themselves
// contain separator characters ("ibc/...", "factory/..."), so a joined key
// would let distinct pairs alias each other. (base, quote) and
// (quote, base) are distinct markets.
func MarketByTokensKey(baseToken, quoteToken string) []byte {
	key := make([]byte, 0, 1+2+len(baseToken)+2+len(quoteToken))
	key = append(key, MarketByTokensKeyPrefix...)
	key = binary.BigEndian.AppendUint16(key, uint16(len(baseToken)))
	key = append(key, baseToken...)
	key = binary.BigEndian.AppendUint16(key, uint16(len(quoteToken)))
	key = append(key, quoteToken...)
	return key
}
