package types

import (
	"cosmossdk.io/errors"
)

// Market module sentinel errors. Every failure aborts the enclosing
// transaction; the multistore cache discards all writes made by the call.
var (
	ErrAlreadyInitialized     = errors.Register(ModuleName, 2, "module already initialized")
	ErrNotInitialized         = errors.Register(ModuleName, 3, "module not initialized")
	ErrMarketExists           = errors.Register(ModuleName, 4, "market already exists for token pair")
	ErrMarketNotFound         = errors.Register(ModuleName, 5, "market not found for token pair")
	ErrEmptyBaseToken         = errors.Register(ModuleName, 6, "base token denom cannot be empty")
	ErrEmptyQuoteToken        = errors.Register(ModuleName, 7, "quote token denom cannot be empty")
	ErrZeroExchangeRate       = errors.Register(ModuleName, 8, "exchange rate cannot be zero")
	ErrZeroAmount             = errors.Register(ModuleName, 9, "amount cannot be zero")
	ErrIncorrectBaseAmount    = errors.Register(ModuleName, 10, "base amount inconsistent with quote amount at exchange rate")
	ErrIncorrectQuoteAmount   = errors.Register(ModuleName, 11, "quote amount inconsistent with base amount at exchange rate")
	ErrDivisionUnderflow      = errors.Register(ModuleName, 12, "integer division underflow")
	ErrMultiplicationOverflow = errors.Register(ModuleName, 13, "integer multiplication overflow")
	ErrOutOfBoundIndex        = errors.Register(ModuleName, 14, "market index out of bounds")
	ErrInvalidAddress         = errors.Register(ModuleName, 15, "invalid address")
)
