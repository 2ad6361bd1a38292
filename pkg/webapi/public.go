package webapi

import (
	"context"

	"ttwebclient/pkg/core"
)

// Public market-data snapshots. These endpoints are unsigned; the same data
// is also served under the signed private paths for accounts whose venue
// restricts anonymous access.

// GetPublicTradeSession fetches the venue's trade session without signing.
func (c *Client) GetPublicTradeSession(ctx context.Context) (*core.TradeSession, error) {
	var out core.TradeSession
	if err := c.get(ctx, c.endpoint("public", "tradesession"), false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPublicAllCurrencies fetches every listed currency without signing.
func (c *Client) GetPublicAllCurrencies(ctx context.Context) ([]core.Currency, error) {
	var out []core.Currency
	if err := c.get(ctx, c.endpoint("public", "currency"), false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublicCurrency fetches one currency by name without signing.
func (c *Client) GetPublicCurrency(ctx context.Context, currency string) ([]core.Currency, error) {
	var out []core.Currency
	if err := c.get(ctx, c.endpoint("public", "currency", currency), false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublicAllSymbols fetches every listed symbol without signing.
func (c *Client) GetPublicAllSymbols(ctx context.Context) ([]core.Symbol, error) {
	var out []core.Symbol
	if err := c.get(ctx, c.endpoint("public", "symbol"), false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublicSymbol fetches one symbol without signing. Symbol names may
// contain slashes ("EUR/USD"); the path segment is percent-encoded.
func (c *Client) GetPublicSymbol(ctx context.Context, symbol string) ([]core.Symbol, error) {
	var out []core.Symbol
	if err := c.get(ctx, c.endpoint("public", "symbol", symbol), false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublicAllTicks fetches top-of-book ticks for all symbols without signing.
func (c *Client) GetPublicAllTicks(ctx context.Context) ([]core.Tick, error) {
	var out []core.Tick
	if err := c.get(ctx, c.endpoint("public", "tick"), false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublicTick fetches the top-of-book tick for one symbol without signing.
func (c *Client) GetPublicTick(ctx context.Context, symbol string) ([]core.Tick, error) {
	var out []core.Tick
	if err := c.get(ctx, c.endpoint("public", "tick", symbol), false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublicAllTicksLevel2 fetches order-book depth for all symbols without signing.
func (c *Client) GetPublicAllTicksLevel2(ctx context.Context) ([]core.Level2, error) {
	var out []core.Level2
	if err := c.get(ctx, c.endpoint("public", "level2"), false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublicTickLevel2 fetches order-book depth for one symbol without signing.
func (c *Client) GetPublicTickLevel2(ctx context.Context, symbol string) ([]core.Level2, error) {
	var out []core.Level2
	if err := c.get(ctx, c.endpoint("public", "level2", symbol), false, &out); err != nil {
		return nil, err
	}
	return out, nil
}
