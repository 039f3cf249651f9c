package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/fixedswap-chain/fixedswap/x/market/types"
)

// GetQueryCmd returns the cli query commands for the market module
func GetQueryCmd() *cobra.Command {
	marketQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the market module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	marketQueryCmd.AddCommand(
		GetCmdQueryInitializationStatus(),
		GetCmdQueryCurrentMarketIndex(),
		GetCmdQueryExchangeRate(),
		GetCmdQueryMarketID(),
		GetCmdQueryMarketByTokens(),
		GetCmdQueryMarketByID(),
		GetCmdQueryMarkets(),
	)

	return marketQueryCmd
}

// GetCmdQueryInitializationStatus returns the command to query the initialization flag
func GetCmdQueryInitializationStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Query whether the market registry has been initialized",
		Long: `Query whether the market registry has been initialized.

Example:
  $ fixedswapd query market status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.InitializationStatus(context.Background(), &types.QueryInitializationStatusRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryCurrentMarketIndex returns the command to query the market id counter
func GetCmdQueryCurrentMarketIndex() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Query the current market index",
		Long: `Query the market id counter. The counter is the id the next market will
receive; zero means the registry has not been initialized.

Example:
  $ fixedswapd query market index`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.CurrentMarketIndex(context.Background(), &types.QueryCurrentMarketIndexRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryExchangeRate returns the command to query the rate of an ordered pair
func GetCmdQueryExchangeRate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate [base-token] [quote-token]",
		Short: "Query the fixed exchange rate of an ordered token pair",
		Long: `Query the fixed exchange rate of an ordered token pair. A zero rate means
no market covers the pair in this ordering.

Example:
  $ fixedswapd query market rate ubase uquote`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.ExchangeRate(context.Background(), &types.QueryExchangeRateRequest{
				BaseToken:  args[0],
				QuoteToken: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryMarketID returns the command to resolve an ordered pair to a market id
func GetCmdQueryMarketID() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id [base-token] [quote-token]",
		Short: "Query the market id of an ordered token pair",
		Long: `Resolve an ordered token pair to its market id. A zero id means no market
covers the pair in this ordering.

Example:
  $ fixedswapd query market id ubase uquote`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.MarketID(context.Background(), &types.QueryMarketIDRequest{
				BaseToken:  args[0],
				QuoteToken: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryMarketByTokens returns the command to query a market by its ordered pair
func GetCmdQueryMarketByTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market-by-tokens [base-token] [quote-token]",
		Short: "Query a market by its ordered token pair",
		Long: `Query the full market record covering an ordered token pair.

Example:
  $ fixedswapd query market market-by-tokens ubase uquote`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.MarketByTokens(context.Background(), &types.QueryMarketByTokensRequest{
				BaseToken:  args[0],
				QuoteToken: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryMarketByID returns the command to query a market by id
func GetCmdQueryMarketByID() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market [market-id]",
		Short: "Query a market by id",
		Long: `Query the full market record at a given id. Valid ids start at 1 and run
up to but excluding the current market index.

Example:
  $ fixedswapd query market market 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			marketID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid market id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.MarketByID(context.Background(), &types.QueryMarketByIDRequest{
				MarketId: marketID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryMarkets returns the command to query all markets
func GetCmdQueryMarkets() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markets",
		Short: "Query all markets",
		Long: `Query all market records.

Example:
  $ fixedswapd query market markets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Markets(context.Background(), &types.QueryMarketsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
