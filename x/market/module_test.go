package market_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	market "github.com/fixedswap-chain/fixedswap/x/market"
	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

func TestAppModuleBasic_Name(t *testing.T) {
	require.Equal(t, types.ModuleName, market.AppModuleBasic{}.Name())
}

func TestAppModuleBasic_DefaultGenesis(t *testing.T) {
	bz := market.AppModuleBasic{}.DefaultGenesis(nil)

	var genState types.GenesisState
	require.NoError(t, json.Unmarshal(bz, &genState))
	require.NoError(t, genState.Validate())
	require.False(t, genState.Initialized)
}

func TestAppModuleBasic_ValidateGenesis(t *testing.T) {
	basic := market.AppModuleBasic{}

	require.NoError(t, basic.ValidateGenesis(nil, nil, basic.DefaultGenesis(nil)))

	bad := json.RawMessage(`{"initialized": false, "next_market_id": 7, "markets": []}`)
	require.Error(t, basic.ValidateGenesis(nil, nil, bad))

	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`not json`)))
}

func TestAppModuleBasic_Commands(t *testing.T) {
	basic := market.AppModuleBasic{}
	require.NotNil(t, basic.GetTxCmd())
	require.NotNil(t, basic.GetQueryCmd())
}
