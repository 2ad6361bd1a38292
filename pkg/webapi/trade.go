package webapi

import (
	"context"
	"fmt"

	"ttwebclient/pkg/core"
)

// GetAllTrades fetches every pending order and open trade on the account.
func (c *Client) GetAllTrades(ctx context.Context) ([]core.Trade, error) {
	var out []core.Trade
	if err := c.get(ctx, c.endpoint("trade"), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTrade fetches one trade by its venue-assigned identifier.
func (c *Client) GetTrade(ctx context.Context, tradeID string) (*core.Trade, error) {
	var out core.Trade
	if err := c.get(ctx, c.endpoint("trade", tradeID), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTrade submits a new trade request and returns the created trade.
func (c *Client) CreateTrade(ctx context.Context, req *core.CreateTradeRequest) (*core.Trade, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	var out core.Trade
	if err := c.do(ctx, "POST", c.endpoint("trade"), req, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ModifyTrade changes the price, protection levels, expiration or comment of
// an existing trade and returns the modified trade.
func (c *Client) ModifyTrade(ctx context.Context, req *core.ModifyTradeRequest) (*core.Trade, error) {
	if req == nil {
		return nil, fmt.Errorf("modify trade: request is required")
	}
	if req.ID == 0 {
		return nil, fmt.Errorf("modify trade: trade id is required")
	}
	var out core.Trade
	if err := c.do(ctx, "PUT", c.endpoint("trade"), req, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelTrade cancels a pending order. The request carries no body; the
// cancellation is expressed entirely in the query string.
func (c *Client) CancelTrade(ctx context.Context, tradeID string) (*core.Trade, error) {
	return c.deleteTrade(ctx,
		queryPair{"type", string(core.CloseTypeCancel)},
		queryPair{"id", tradeID},
	)
}

// CloseTrade fully closes a filled position.
func (c *Client) CloseTrade(ctx context.Context, tradeID string) (*core.Trade, error) {
	return c.deleteTrade(ctx,
		queryPair{"type", string(core.CloseTypeClose)},
		queryPair{"id", tradeID},
	)
}

// CloseTradeAmount partially closes a filled position by the given amount.
func (c *Client) CloseTradeAmount(ctx context.Context, tradeID string, amount core.Decimal) (*core.Trade, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("close trade: amount must be positive")
	}
	return c.deleteTrade(ctx,
		queryPair{"type", string(core.CloseTypeClose)},
		queryPair{"id", tradeID},
		queryPair{"amount", amount.Text('f')},
	)
}

// CloseByTrade closes a position by an opposite one.
func (c *Client) CloseByTrade(ctx context.Context, tradeID, byTradeID string) (*core.Trade, error) {
	return c.deleteTrade(ctx,
		queryPair{"type", string(core.CloseTypeCloseBy)},
		queryPair{"id", tradeID},
		queryPair{"byid", byTradeID},
	)
}

// deleteTrade issues DELETE /api/v2/trade with the given query pairs in
// their endpoint-defined order.
func (c *Client) deleteTrade(ctx context.Context, pairs ...queryPair) (*core.Trade, error) {
	var out core.Trade
	u := withQuery(c.endpoint("trade"), pairs...)
	if err := c.do(ctx, "DELETE", u, nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func validateCreate(req *core.CreateTradeRequest) error {
	if req == nil {
		return fmt.Errorf("create trade: request is required")
	}
	if !req.Type.Valid() {
		return fmt.Errorf("create trade: invalid type %q", req.Type)
	}
	if !req.Side.Valid() {
		return fmt.Errorf("create trade: invalid side %q", req.Side)
	}
	if req.Symbol == "" {
		return fmt.Errorf("create trade: symbol is required")
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("create trade: amount must be positive, got %s", req.Amount.Text('f'))
	}
	if req.Type.RequiresPrice() && req.Price == nil {
		return fmt.Errorf("create trade: price is required for %s trades", req.Type)
	}
	return nil
}
