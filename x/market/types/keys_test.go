package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

func TestMarketKey(t *testing.T) {
	key := types.MarketKey(1)
	require.Len(t, key, 9)
	require.Equal(t, types.MarketKeyPrefix[0], key[0])

	// Big-endian ids keep iteration in id order.
	require.Equal(t, byte(1), key[8])
	require.True(t, string(types.MarketKey(2)) > string(types.MarketKey(1)))
	require.True(t, string(types.MarketKey(256)) > string(types.MarketKey(255)))
}

func TestMarketByTokensKey_Directional(t *testing.T) {
	forward := types.MarketByTokensKey("ubase", "uquote")
	reverse := types.MarketByTokensKey("uquote", "ubase")
	require.NotEqual(t, forward, reverse)

	require.Equal(t, types.MarketByTokensKeyPrefix[0], forward[0])

	want := []byte{0x04, 0x00, 0x05}
	want = append(want, "ubase"...)
	want = append(want, 0x00, 0x06)
	want = append(want, "uquote"...)
	require.Equal(t, want, forward)
}

func TestMarketByTokensKey_SlashDenomsDoNotAlias(t *testing.T) {
	// Denoms may contain '/' ("ibc/...", "factory/..."); the length
	// prefixes keep such pairs from sharing a key.
	require.NotEqual(t,
		types.MarketByTokensKey("aaa/bbb", "ccc"),
		types.MarketByTokensKey("aaa", "bbb/ccc"),
	)
	require.NotEqual(t,
		types.MarketByTokensKey("ibc/abc", "uatom"),
		types.MarketByTokensKey("ibc", "abc/uatom"),
	)
}

func TestKeyPrefixes_Distinct(t *testing.T) {
	prefixes := [][]byte{
		types.InitializedKey,
		types.NextMarketIDKey,
		types.MarketKeyPrefix,
		types.MarketByTokensKeyPrefix,
	}
	seen := make(map[byte]bool)
	for _, p := range prefixes {
		require.Len(t, p, 1)
		require.False(t, seen[p[0]], "duplicate prefix %x", p[0])
		seen[p[0]] = true
	}
}
