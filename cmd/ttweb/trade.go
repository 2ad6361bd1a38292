package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ttwebclient/pkg/core"
	"ttwebclient/pkg/webapi"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Create, modify, and close trades",
}

var (
	createSymbol   string
	createSide     string
	createType     string
	createAmount   string
	createPrice    string
	createStopLoss string
	createTP       string
	createIOC      bool
	createComment  string
	createClientID string
)

var tradeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Place a new trade or pending order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		builder := webapi.NewTradeBuilder(createSymbol).
			Side(core.TradeSide(createSide)).
			Type(core.TradeType(createType)).
			Amount(createAmount)
		if createPrice != "" {
			builder.Price(createPrice)
		}
		if createStopLoss != "" {
			builder.StopLoss(createStopLoss)
		}
		if createTP != "" {
			builder.TakeProfit(createTP)
		}
		if createIOC {
			builder.ImmediateOrCancel()
		}
		if createComment != "" {
			builder.Comment(createComment)
		}
		if createClientID != "" {
			builder.ClientID(createClientID)
		} else {
			builder.GeneratedClientID()
		}
		req, err := builder.Build()
		if err != nil {
			return err
		}
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			trade, err := c.CreateTrade(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(trade)
		})
	},
}

var (
	modifyID       int64
	modifyPrice    string
	modifyStopLoss string
	modifyTP       string
	modifyComment  string
	modifyExpires  string
)

var tradeModifyCmd = &cobra.Command{
	Use:   "modify",
	Short: "Change price, protection levels, or expiry of a pending order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &core.ModifyTradeRequest{ID: modifyID, Comment: modifyComment}
		var err error
		if req.Price, err = optionalDecimal(modifyPrice); err != nil {
			return fmt.Errorf("--price: %w", err)
		}
		if req.StopLoss, err = optionalDecimal(modifyStopLoss); err != nil {
			return fmt.Errorf("--stop-loss: %w", err)
		}
		if req.TakeProfit, err = optionalDecimal(modifyTP); err != nil {
			return fmt.Errorf("--take-profit: %w", err)
		}
		if modifyExpires != "" {
			expires, err := time.Parse(time.RFC3339, modifyExpires)
			if err != nil {
				return fmt.Errorf("--expires: %w", err)
			}
			req.ExpiredTimestamp = expires.UnixMilli()
		}
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			trade, err := c.ModifyTrade(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(trade)
		})
	},
}

var tradeCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a pending order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			trade, err := c.CancelTrade(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(trade)
		})
	},
}

var closeAmount string

var tradeCloseCmd = &cobra.Command{
	Use:   "close <id>",
	Short: "Close a filled trade, fully or partially",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			if closeAmount == "" {
				trade, err := c.CloseTrade(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(trade)
			}
			amount, err := core.NewDecimal(closeAmount)
			if err != nil {
				return fmt.Errorf("--amount: %w", err)
			}
			trade, err := c.CloseTradeAmount(ctx, args[0], amount)
			if err != nil {
				return err
			}
			return printJSON(trade)
		})
	},
}

var tradeCloseByCmd = &cobra.Command{
	Use:   "closeby <id> <by-id>",
	Short: "Close a trade by an opposite trade",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			trade, err := c.CloseByTrade(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(trade)
		})
	},
}

var (
	historyTrade     string
	historyFrom      string
	historyTo        string
	historyDirection string
	historyAll       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch account trade history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &core.TradeHistoryRequest{
			RequestDirection: core.RequestDirection(historyDirection),
		}
		if historyFrom != "" {
			from, err := time.Parse(time.RFC3339, historyFrom)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			req.TimestampFrom = from.UnixMilli()
		}
		if historyTo != "" {
			to, err := time.Parse(time.RFC3339, historyTo)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			req.TimestampTo = to.UnixMilli()
		}
		return withClient(true, func(ctx context.Context, c *webapi.Client) error {
			if historyTrade != "" {
				report, err := c.GetTradeHistoryByTrade(ctx, historyTrade, req)
				if err != nil {
					return err
				}
				return printJSON(report)
			}
			if !historyAll {
				report, err := c.GetTradeHistory(ctx, req)
				if err != nil {
					return err
				}
				return printJSON(report)
			}
			for report, err := range c.TradeHistoryPages(ctx, req) {
				if err != nil {
					return err
				}
				if err := printJSON(report); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func optionalDecimal(value string) (*core.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := core.NewDecimal(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func init() {
	cf := tradeCreateCmd.Flags()
	cf.StringVar(&createSymbol, "symbol", "", "symbol to trade (required)")
	cf.StringVar(&createSide, "side", "", "Buy or Sell (required)")
	cf.StringVar(&createType, "type", string(core.TradeTypeMarket), "Market, Limit, or Stop")
	cf.StringVar(&createAmount, "amount", "", "trade amount (required)")
	cf.StringVar(&createPrice, "price", "", "price for Limit and Stop orders")
	cf.StringVar(&createStopLoss, "stop-loss", "", "stop-loss price")
	cf.StringVar(&createTP, "take-profit", "", "take-profit price")
	cf.BoolVar(&createIOC, "ioc", false, "immediate-or-cancel")
	cf.StringVar(&createComment, "comment", "", "free-form comment")
	cf.StringVar(&createClientID, "client-id", "", "client trade id (generated when empty)")

	mf := tradeModifyCmd.Flags()
	mf.Int64Var(&modifyID, "id", 0, "trade id (required)")
	mf.StringVar(&modifyPrice, "price", "", "new price")
	mf.StringVar(&modifyStopLoss, "stop-loss", "", "new stop-loss price")
	mf.StringVar(&modifyTP, "take-profit", "", "new take-profit price")
	mf.StringVar(&modifyComment, "comment", "", "new comment")
	mf.StringVar(&modifyExpires, "expires", "", "new expiry (RFC3339)")

	tradeCloseCmd.Flags().StringVar(&closeAmount, "amount", "", "partial close amount")

	hf := historyCmd.Flags()
	hf.StringVar(&historyTrade, "trade", "", "restrict history to one trade id")
	hf.StringVar(&historyFrom, "from", "", "start of the window (RFC3339)")
	hf.StringVar(&historyTo, "to", "", "end of the window (RFC3339)")
	hf.StringVar(&historyDirection, "direction", string(core.DirectionForward), "Forward or Backward")
	hf.BoolVar(&historyAll, "all", false, "follow pagination until the last report")

	tradeCmd.AddCommand(tradeCreateCmd, tradeModifyCmd, tradeCancelCmd, tradeCloseCmd, tradeCloseByCmd)
	rootCmd.AddCommand(tradeCmd, historyCmd)
}
