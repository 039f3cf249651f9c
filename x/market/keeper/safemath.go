package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// maxInt256 is 2^256, the exclusive upper bound of the representable range.
var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeMul multiplies two amounts with explicit 256-bit overflow checking.
// math.Int panics past 256 bits; the registry surfaces the condition as a
// typed error instead.
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrMultiplicationOverflow.Wrapf(
			"%s * %s exceeds 256 bits", a.String(), b.String())
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides a by b with truncation, rejecting a zero divisor.
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, types.ErrDivisionUnderflow.Wrapf(
			"cannot divide %s by zero", a.String())
	}

	result := new(big.Int).Quo(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}
