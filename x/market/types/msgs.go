package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names
const (
	TypeMsgInitialize       = "initialize"
	TypeMsgCreateMarket     = "create_market"
	TypeMsgSwapBaseForQuote = "swap_base_for_quote"
	TypeMsgSwapQuoteForBase = "swap_quote_for_base"
)

// Ensure all message types implement the sdk.Msg interface
var (
	_ sdk.Msg = &MsgInitialize{}
	_ sdk.Msg = &MsgCreateMarket{}
	_ sdk.Msg = &MsgSwapBaseForQuote{}
	_ sdk.Msg = &MsgSwapQuoteForBase{}
)

// MsgInitialize performs the one-time initialization of the market registry.
// The call is permissionless; the second and every later call fails.
type MsgInitialize struct {
	Sender string `json:"sender"`
}

// NewMsgInitialize creates a new MsgInitialize instance
func NewMsgInitialize(sender string) *MsgInitialize {
	return &MsgInitialize{Sender: sender}
}

// Route implements the sdk.Msg interface
func (msg MsgInitialize) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgInitialize) Type() string { return TypeMsgInitialize }

// GetSigners implements the sdk.Msg interface
func (msg MsgInitialize) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgInitialize) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgInitialize) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}
	return nil
}

// MsgCreateMarket registers a new fixed-rate market for an ordered token
// pair and deposits the initial base and quote liquidity into the module
// account. The two amounts must satisfy quote = base * rate exactly.
type MsgCreateMarket struct {
	Creator      string   `json:"creator"`
	BaseToken    string   `json:"base_token"`
	QuoteToken   string   `json:"quote_token"`
	ExchangeRate math.Int `json:"exchange_rate"`
	BaseAmount   math.Int `json:"base_amount"`
	QuoteAmount  math.Int `json:"quote_amount"`
}

// NewMsgCreateMarket creates a new MsgCreateMarket instance
func NewMsgCreateMarket(creator, baseToken, quoteToken string, exchangeRate, baseAmount, quoteAmount math.Int) *MsgCreateMarket {
	return &MsgCreateMarket{
		Creator:      creator,
		BaseToken:    baseToken,
		QuoteToken:   quoteToken,
		ExchangeRate: exchangeRate,
		BaseAmount:   baseAmount,
		QuoteAmount:  quoteAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreateMarket) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreateMarket) Type() string { return TypeMsgCreateMarket }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreateMarket) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreateMarket) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface. Checks follow the
// registry's fixed validation order: rate, base token, quote token, amounts.
func (msg MsgCreateMarket) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %v", err)
	}

	if msg.ExchangeRate.IsNil() || !msg.ExchangeRate.IsPositive() {
		return ErrZeroExchangeRate
	}

	if err := validateTokenPair(msg.BaseToken, msg.QuoteToken); err != nil {
		return err
	}

	if msg.BaseAmount.IsNil() || !msg.BaseAmount.IsPositive() {
		return ErrZeroAmount.Wrap("base amount must be positive")
	}

	if msg.QuoteAmount.IsNil() || !msg.QuoteAmount.IsPositive() {
		return ErrZeroAmount.Wrap("quote amount must be positive")
	}

	return nil
}

// MsgSwapBaseForQuote swaps a base token amount for quote tokens at the
// market's fixed rate.
type MsgSwapBaseForQuote struct {
	Trader     string   `json:"trader"`
	BaseToken  string   `json:"base_token"`
	QuoteToken string   `json:"quote_token"`
	BaseAmount math.Int `json:"base_amount"`
}

// NewMsgSwapBaseForQuote creates a new MsgSwapBaseForQuote instance
func NewMsgSwapBaseForQuote(trader, baseToken, quoteToken string, baseAmount math.Int) *MsgSwapBaseForQuote {
	return &MsgSwapBaseForQuote{
		Trader:     trader,
		BaseToken:  baseToken,
		QuoteToken: quoteToken,
		BaseAmount: baseAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapBaseForQuote) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwapBaseForQuote) Type() string { return TypeMsgSwapBaseForQuote }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapBaseForQuote) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapBaseForQuote) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapBaseForQuote) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %v", err)
	}

	if msg.BaseAmount.IsNil() || !msg.BaseAmount.IsPositive() {
		return ErrZeroAmount.Wrap("base amount must be positive")
	}

	return validateTokenPair(msg.BaseToken, msg.QuoteToken)
}

// MsgSwapQuoteForBase swaps a quote token amount for base tokens at the
// market's fixed rate, truncating the integer division.
type MsgSwapQuoteForBase struct {
	Trader      string   `json:"trader"`
	BaseToken   string   `json:"base_token"`
	QuoteToken  string   `json:"quote_token"`
	QuoteAmount math.Int `json:"quote_amount"`
}

// NewMsgSwapQuoteForBase creates a new MsgSwapQuoteForBase instance
func NewMsgSwapQuoteForBase(trader, baseToken, quoteToken string, quoteAmount math.Int) *MsgSwapQuoteForBase {
	return &MsgSwapQuoteForBase{
		Trader:      trader,
		BaseToken:   baseToken,
		QuoteToken:  quoteToken,
		QuoteAmount: quoteAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapQuoteForBase) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwapQuoteForBase) Type() string { return TypeMsgSwapQuoteForBase }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapQuoteForBase) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapQuoteForBase) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapQuoteForBase) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %v", err)
	}

	if msg.QuoteAmount.IsNil() || !msg.QuoteAmount.IsPositive() {
		return ErrZeroAmount.Wrap("quote amount must be positive")
	}

	return validateTokenPair(msg.BaseToken, msg.QuoteToken)
}

// validateTokenPair checks both denoms of an ordered pair, base first.
// The empty denom plays the role of the zero address.
func validateTokenPair(baseToken, quoteToken string) error {
	if baseToken == "" {
		return ErrEmptyBaseToken
	}

	if quoteToken == "" {
		return ErrEmptyQuoteToken
	}

	if err := sdk.ValidateDenom(baseToken); err != nil {
		return ErrEmptyBaseToken.Wrapf("invalid base token denom: %v", err)
	}

	if err := sdk.ValidateDenom(quoteToken); err != nil {
		return ErrEmptyQuoteToken.Wrapf("invalid quote token denom: %v", err)
	}

	return nil
}

// proto.Message implementations for the hand-written message types.

func (msg *MsgInitialize) Reset()         { *msg = MsgInitialize{} }
func (msg *MsgInitialize) ProtoMessage()  {}
func (msg MsgInitialize) String() string  { return fmt.Sprintf("%s{%s}", TypeMsgInitialize, msg.Sender) }
func (msg *MsgCreateMarket) Reset()       { *msg = MsgCreateMarket{} }
func (msg *MsgCreateMarket) ProtoMessage() {}
func (msg MsgCreateMarket) String() string {
	return fmt.Sprintf("%s{%s %s/%s rate=%s}", TypeMsgCreateMarket, msg.Creator, msg.BaseToken, msg.QuoteToken, msg.ExchangeRate)
}
func (msg *MsgSwapBaseForQuote) Reset()        { *msg = MsgSwapBaseForQuote{} }
func (msg *MsgSwapBaseForQuote) ProtoMessage() {}
func (msg MsgSwapBaseForQuote) String() string {
	return fmt.Sprintf("%s{%s %s/%s in=%s}", TypeMsgSwapBaseForQuote, msg.Trader, msg.BaseToken, msg.QuoteToken, msg.BaseAmount)
}
func (msg *MsgSwapQuoteForBase) Reset()        { *msg = MsgSwapQuoteForBase{} }
func (msg *MsgSwapQuoteForBase) ProtoMessage() {}
func (msg MsgSwapQuoteForBase) String() string {
	return fmt.Sprintf("%s{%s %s/%s in=%s}", TypeMsgSwapQuoteForBase, msg.Trader, msg.BaseToken, msg.QuoteToken, msg.QuoteAmount)
}
