package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// GetTxCmd returns the transaction commands for the market module
func GetTxCmd() *cobra.Command {
	marketTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Fixed-rate market transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	marketTxCmd.AddCommand(
		CmdInitialize(),
		CmdCreateMarket(),
		CmdSwapBaseForQuote(),
		CmdSwapQuoteForBase(),
	)

	return marketTxCmd
}

// CmdInitialize returns a CLI command handler for the one-time registry initialization
func CmdInitialize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize",
		Short: "Initialize the market registry",
		Long: `Initialize the market registry. This succeeds exactly once per chain;
markets can only be created after initialization.

Example:
  $ fixedswapd tx market initialize --from mykey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgInitialize{
				Sender: clientCtx.GetFromAddress().String(),
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateMarket returns a CLI command handler for creating a fixed-rate market
func CmdCreateMarket() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-market [base-token] [quote-token] [exchange-rate] [base-amount] [quote-amount]",
		Short: "Create a fixed-rate market for an ordered token pair",
		Long: `Create a fixed-rate market for the ordered (base, quote) token pair and
fund it with initial liquidity. The liquidity must match the rate exactly:
quote-amount = base-amount * exchange-rate.

Example:
  $ fixedswapd tx market create-market ubase uquote 3 1000000 3000000 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			baseToken := args[0]
			quoteToken := args[1]

			exchangeRate, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid exchange-rate: %s (must be integer)", args[2])
			}

			baseAmount, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid base-amount: %s (must be integer)", args[3])
			}

			quoteAmount, ok := math.NewIntFromString(args[4])
			if !ok {
				return fmt.Errorf("invalid quote-amount: %s (must be integer)", args[4])
			}

			msg := &types.MsgCreateMarket{
				Creator:      clientCtx.GetFromAddress().String(),
				BaseToken:    baseToken,
				QuoteToken:   quoteToken,
				ExchangeRate: exchangeRate,
				BaseAmount:   baseAmount,
				QuoteAmount:  quoteAmount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapBaseForQuote returns a CLI command handler for base-to-quote swaps
func CmdSwapBaseForQuote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-base [base-token] [quote-token] [base-amount]",
		Short: "Swap base tokens for quote tokens at the market's fixed rate",
		Long: `Swap base tokens for quote tokens at the market's fixed rate. The pair is
directional; the market must have been created with exactly this (base, quote)
ordering.

Example:
  $ fixedswapd tx market swap-base ubase uquote 1000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			baseAmount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid base-amount: %s (must be integer)", args[2])
			}

			msg := &types.MsgSwapBaseForQuote{
				Trader:     clientCtx.GetFromAddress().String(),
				BaseToken:  args[0],
				QuoteToken: args[1],
				BaseAmount: baseAmount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapQuoteForBase returns a CLI command handler for quote-to-base swaps
func CmdSwapQuoteForBase() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-quote [base-token] [quote-token] [quote-amount]",
		Short: "Swap quote tokens for base tokens at the market's fixed rate",
		Long: `Swap quote tokens for base tokens at the market's fixed rate. The output
is the quote amount divided by the rate, truncated toward zero.

Example:
  $ fixedswapd tx market swap-quote ubase uquote 3000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			quoteAmount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid quote-amount: %s (must be integer)", args[2])
			}

			msg := &types.MsgSwapQuoteForBase{
				Trader:      clientCtx.GetFromAddress().String(),
				BaseToken:   args[0],
				QuoteToken:  args[1],
				QuoteAmount: quoteAmount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
