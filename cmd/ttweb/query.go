package main

import (
	"context"

	"github.com/spf13/cobra"

	"ttwebclient/pkg/core"
	"ttwebclient/pkg/webapi"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the venue trade session status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(hasCredentials(), func(ctx context.Context, c *webapi.Client) error {
			var (
				session *core.TradeSession
				err     error
			)
			if hasCredentials() {
				session, err = c.GetTradeSession(ctx)
			} else {
				session, err = c.GetPublicTradeSession(ctx)
			}
			if err != nil {
				return err
			}
			return printJSON(session)
		})
	},
}

var currenciesCmd = &cobra.Command{
	Use:   "currencies [currency]",
	Short: "List venue currencies, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(hasCredentials(), func(ctx context.Context, c *webapi.Client) error {
			var (
				currencies []core.Currency
				err        error
			)
			switch {
			case len(args) == 1 && hasCredentials():
				currencies, err = c.GetCurrency(ctx, args[0])
			case len(args) == 1:
				currencies, err = c.GetPublicCurrency(ctx, args[0])
			case hasCredentials():
				currencies, err = c.GetAllCurrencies(ctx)
			default:
				currencies, err = c.GetPublicAllCurrencies(ctx)
			}
			if err != nil {
				return err
			}
			return printJSON(currencies)
		})
	},
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols [symbol]",
	Short: "List tradable symbols, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(hasCredentials(), func(ctx context.Context, c *webapi.Client) error {
			var (
				symbols []core.Symbol
				err     error
			)
			switch {
			case len(args) == 1 && hasCredentials():
				symbols, err = c.GetSymbol(ctx, args[0])
			case len(args) == 1:
				symbols, err = c.GetPublicSymbol(ctx, args[0])
			case hasCredentials():
				symbols, err = c.GetAllSymbols(ctx)
			default:
				symbols, err = c.GetPublicAllSymbols(ctx)
			}
			if err != nil {
				return err
			}
			return printJSON(symbols)
		})
	},
}

var ticksCmd = &cobra.Command{
	Use:   "ticks [symbol]",
	Short: "Show top-of-book ticks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(hasCredentials(), func(ctx context.Context, c *webapi.Client) error {
			var (
				ticks []core.Tick
				err   error
			)
			switch {
			case len(args) == 1 && hasCredentials():
				ticks, err = c.GetTick(ctx, args[0])
			case len(args) == 1:
				ticks, err = c.GetPublicTick(ctx, args[0])
			case hasCredentials():
				ticks, err = c.GetAllTicks(ctx)
			default:
				ticks, err = c.GetPublicAllTicks(ctx)
			}
			if err != nil {
				return err
			}
			return printJSON(ticks)
		})
	},
}

var level2Cmd = &cobra.Command{
	Use:   "level2 [symbol]",
	Short: "Show order-book depth snapshots",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(hasCredentials(), func(ctx context.Context, c *webapi.Client) error {
			var (
				books []core.Level2
				err   error
			)
			switch {
			case len(args) == 1 && hasCredentials():
				books, err = c.GetTickLevel2(ctx, args[0])
			case len(args) == 1:
				books, err = c.GetPublicTickLevel2(ctx, args[0])
			case hasCredentials():
				books, err = c.GetAllTicksLevel2(ctx)
			default:
				books, err = c.GetPublicAllTicksLevel2(ctx)
			}
			if err != nil {
				return err
			}
			return printJSON(books)
		})
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account behind the configured credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			account, err := c.GetAccount(ctx)
			if err != nil {
				return err
			}
			return printJSON(account)
		})
	},
}

var assetsCmd = &cobra.Command{
	Use:   "assets [currency]",
	Short: "List cash-account asset balances",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			if len(args) == 1 {
				asset, err := c.GetAsset(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(asset)
			}
			assets, err := c.GetAllAssets(ctx)
			if err != nil {
				return err
			}
			return printJSON(assets)
		})
	},
}

var positionsCmd = &cobra.Command{
	Use:   "positions [symbol]",
	Short: "List net-account positions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			if len(args) == 1 {
				position, err := c.GetPosition(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(position)
			}
			positions, err := c.GetAllPositions(ctx)
			if err != nil {
				return err
			}
			return printJSON(positions)
		})
	},
}

var tradesCmd = &cobra.Command{
	Use:   "trades [id]",
	Short: "List open trades and pending orders, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			if len(args) == 1 {
				trade, err := c.GetTrade(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(trade)
			}
			trades, err := c.GetAllTrades(ctx)
			if err != nil {
				return err
			}
			return printJSON(trades)
		})
	},
}

// withClient builds a client, runs fn, and always releases the underlying
// HTTP client.
func withClient(private bool, fn func(context.Context, *webapi.Client) error) error {
	client, err := newClient(private)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(context.Background(), client)
}

func init() {
	rootCmd.AddCommand(
		sessionCmd,
		currenciesCmd,
		symbolsCmd,
		ticksCmd,
		level2Cmd,
		accountCmd,
		assetsCmd,
		positionsCmd,
		tradesCmd,
	)
}
