package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the module's concrete message types on the
// LegacyAmino codec
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitialize{}, "market/MsgInitialize", nil)
	cdc.RegisterConcrete(&MsgCreateMarket{}, "market/MsgCreateMarket", nil)
	cdc.RegisterConcrete(&MsgSwapBaseForQuote{}, "market/MsgSwapBaseForQuote", nil)
	cdc.RegisterConcrete(&MsgSwapQuoteForBase{}, "market/MsgSwapQuoteForBase", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface
// registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitialize{},
		&MsgCreateMarket{},
		&MsgSwapBaseForQuote{},
		&MsgSwapQuoteForBase{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
