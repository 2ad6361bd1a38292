package webapi

import (
	"context"

	"ttwebclient/pkg/core"
)

// Signed account and market-data operations.

// GetAccount fetches the account the credential triple belongs to.
func (c *Client) GetAccount(ctx context.Context) (*core.Account, error) {
	var out core.Account
	if err := c.get(ctx, c.endpoint("account"), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTradeSession fetches the trade session over the signed endpoint.
func (c *Client) GetTradeSession(ctx context.Context) (*core.TradeSession, error) {
	var out core.TradeSession
	if err := c.get(ctx, c.endpoint("tradesession"), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllCurrencies fetches every listed currency over the signed endpoint.
func (c *Client) GetAllCurrencies(ctx context.Context) ([]core.Currency, error) {
	var out []core.Currency
	if err := c.get(ctx, c.endpoint("currency"), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCurrency fetches one currency over the signed endpoint.
func (c *Client) GetCurrency(ctx context.Context, currency string) ([]core.Currency, error) {
	var out []core.Currency
	if err := c.get(ctx, c.endpoint("currency", currency), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllSymbols fetches every listed symbol over the signed endpoint.
func (c *Client) GetAllSymbols(ctx context.Context) ([]core.Symbol, error) {
	var out []core.Symbol
	if err := c.get(ctx, c.endpoint("symbol"), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSymbol fetches one symbol over the signed endpoint.
func (c *Client) GetSymbol(ctx context.Context, symbol string) ([]core.Symbol, error) {
	var out []core.Symbol
	if err := c.get(ctx, c.endpoint("symbol", symbol), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllTicks fetches top-of-book ticks over the signed endpoint.
func (c *Client) GetAllTicks(ctx context.Context) ([]core.Tick, error) {
	var out []core.Tick
	if err := c.get(ctx, c.endpoint("tick"), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTick fetches the top-of-book tick for one symbol over the signed endpoint.
func (c *Client) GetTick(ctx context.Context, symbol string) ([]core.Tick, error) {
	var out []core.Tick
	if err := c.get(ctx, c.endpoint("tick", symbol), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllTicksLevel2 fetches order-book depth for all symbols over the signed endpoint.
func (c *Client) GetAllTicksLevel2(ctx context.Context) ([]core.Level2, error) {
	var out []core.Level2
	if err := c.get(ctx, c.endpoint("level2"), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTickLevel2 fetches order-book depth for one symbol over the signed endpoint.
func (c *Client) GetTickLevel2(ctx context.Context, symbol string) ([]core.Level2, error) {
	var out []core.Level2
	if err := c.get(ctx, c.endpoint("level2", symbol), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllAssets fetches every cash-account asset balance.
func (c *Client) GetAllAssets(ctx context.Context) ([]core.Asset, error) {
	var out []core.Asset
	if err := c.get(ctx, c.endpoint("asset"), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAsset fetches the asset balance for one currency.
func (c *Client) GetAsset(ctx context.Context, currency string) (*core.Asset, error) {
	var out core.Asset
	if err := c.get(ctx, c.endpoint("asset", currency), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllPositions fetches every net-account position.
func (c *Client) GetAllPositions(ctx context.Context) ([]core.Position, error) {
	var out []core.Position
	if err := c.get(ctx, c.endpoint("position"), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPosition fetches the net-account position for one symbol.
func (c *Client) GetPosition(ctx context.Context, symbol string) (*core.Position, error) {
	var out core.Position
	if err := c.get(ctx, c.endpoint("position", symbol), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
