package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.False(t, gs.Initialized)
	require.Equal(t, uint64(0), gs.NextMarketId)
	require.Empty(t, gs.Markets)
}

func TestGenesisValidate(t *testing.T) {
	tests := []struct {
		name     string
		genState types.GenesisState
		wantErr  string
	}{
		{
			name: "valid initialized",
			genState: types.GenesisState{
				Initialized:  true,
				NextMarketId: 3,
				Markets: []types.Market{
					types.NewMarket(1, "ubase", "uquote", math.NewInt(3)),
					types.NewMarket(2, "uquote", "ubase", math.NewInt(2)),
				},
			},
		},
		{
			name: "valid pairs with slash denoms",
			genState: types.GenesisState{
				Initialized:  true,
				NextMarketId: 3,
				Markets: []types.Market{
					types.NewMarket(1, "aaa/bbb", "ccc", math.NewInt(2)),
					types.NewMarket(2, "aaa", "bbb/ccc", math.NewInt(5)),
				},
			},
		},
		{
			name: "valid freshly initialized",
			genState: types.GenesisState{
				Initialized:  true,
				NextMarketId: 1,
			},
		},
		{
			name: "uninitialized with nonzero counter",
			genState: types.GenesisState{
				Initialized:  false,
				NextMarketId: 5,
			},
			wantErr: "next market id must be 0",
		},
		{
			name: "uninitialized with markets",
			genState: types.GenesisState{
				Initialized: false,
				Markets: []types.Market{
					types.NewMarket(1, "ubase", "uquote", math.NewInt(3)),
				},
			},
			wantErr: "cannot hold markets",
		},
		{
			name: "initialized with zero counter",
			genState: types.GenesisState{
				Initialized:  true,
				NextMarketId: 0,
			},
			wantErr: "must be positive",
		},
		{
			name: "counter and count mismatch",
			genState: types.GenesisState{
				Initialized:  true,
				NextMarketId: 5,
				Markets: []types.Market{
					types.NewMarket(1, "ubase", "uquote", math.NewInt(3)),
				},
			},
			wantErr: "does not match counter",
		},
		{
			name: "gap in ids",
			genState: types.GenesisState{
				Initialized:  true,
				NextMarketId: 3,
				Markets: []types.Market{
					types.NewMarket(1, "ubase", "uquote", math.NewInt(3)),
					types.NewMarket(3, "uquote", "ubase", math.NewInt(2)),
				},
			},
			wantErr: "outside",
		},
		{
			name: "duplicate id",
			genState: types.GenesisState{
				Initialized:  true,
				NextMarketId: 3,
				Markets: []types.Market{
					types.NewMarket(1, "ubase", "uquote", math.NewInt(3)),
					types.NewMarket(1, "uquote", "ubase", math.NewInt(2)),
				},
			},
			wantErr: "duplicate market id",
		},
		{
			name: "duplicate ordered pair",
			genState: types.GenesisState{
				Initialized:  true,
				NextMarketId: 3,
				Markets: []types.Market{
					types.NewMarket(1, "ubase", "uquote", math.NewInt(3)),
					types.NewMarket(2, "ubase", "uquote", math.NewInt(7)),
				},
			},
			wantErr: "duplicate market for token pair",
		},
		{
			name: "malformed market",
			genState: types.GenesisState{
				Initialized:  true,
				NextMarketId: 2,
				Markets: []types.Market{
					types.NewMarket(1, "ubase", "uquote", math.NewInt(0)),
				},
			},
			wantErr: "invalid market",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
