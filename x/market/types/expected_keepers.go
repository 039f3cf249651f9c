package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the external fungible-token interface the market module
// consumes. Pulling caller funds into module custody maps to
// SendCoinsFromAccountToModule (transfer-from semantics: the chain's signer
// model replaces per-spender approvals); paying out maps to
// SendCoinsFromModuleToAccount. A failure of either call aborts the
// enclosing operation.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}
