package webapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ttwebclient/pkg/core"
)

// TradeBuilder provides a fluent interface for constructing trade requests.
// It accumulates the first validation error and reports it on Build.
//
// Example:
//
//	req, err := webapi.NewTradeBuilder("EURUSD").
//	    Buy().
//	    Limit().
//	    Price("1.0950").
//	    Amount("10000").
//	    Build()
type TradeBuilder struct {
	req *core.CreateTradeRequest
	err error
}

// NewTradeBuilder creates a builder for the given symbol.
func NewTradeBuilder(symbol string) *TradeBuilder {
	return &TradeBuilder{
		req: &core.CreateTradeRequest{Symbol: symbol},
	}
}

// Side sets the trade side.
func (b *TradeBuilder) Side(side core.TradeSide) *TradeBuilder {
	if b.err != nil {
		return b
	}
	b.req.Side = side
	return b
}

// Buy sets the trade side to Buy.
func (b *TradeBuilder) Buy() *TradeBuilder {
	return b.Side(core.TradeSideBuy)
}

// Sell sets the trade side to Sell.
func (b *TradeBuilder) Sell() *TradeBuilder {
	return b.Side(core.TradeSideSell)
}

// Type sets the trade type.
func (b *TradeBuilder) Type(t core.TradeType) *TradeBuilder {
	if b.err != nil {
		return b
	}
	b.req.Type = t
	return b
}

// Market sets the trade type to Market.
func (b *TradeBuilder) Market() *TradeBuilder {
	return b.Type(core.TradeTypeMarket)
}

// Limit sets the trade type to Limit.
func (b *TradeBuilder) Limit() *TradeBuilder {
	return b.Type(core.TradeTypeLimit)
}

// Stop sets the trade type to Stop.
func (b *TradeBuilder) Stop() *TradeBuilder {
	return b.Type(core.TradeTypeStop)
}

// Price sets the trade price from its string representation.
func (b *TradeBuilder) Price(price string) *TradeBuilder {
	if b.err != nil {
		return b
	}
	d, err := core.NewDecimal(price)
	if err != nil {
		b.err = fmt.Errorf("parse price: %w", err)
		return b
	}
	b.req.Price = &d
	return b
}

// Amount sets the trade amount from its string representation.
func (b *TradeBuilder) Amount(amount string) *TradeBuilder {
	if b.err != nil {
		return b
	}
	d, err := core.NewDecimal(amount)
	if err != nil {
		b.err = fmt.Errorf("parse amount: %w", err)
		return b
	}
	b.req.Amount = d
	return b
}

// AmountDecimal sets the trade amount from a Decimal.
func (b *TradeBuilder) AmountDecimal(amount core.Decimal) *TradeBuilder {
	if b.err != nil {
		return b
	}
	b.req.Amount = amount
	return b
}

// StopLoss sets the protective stop-loss price.
func (b *TradeBuilder) StopLoss(price string) *TradeBuilder {
	if b.err != nil {
		return b
	}
	d, err := core.NewDecimal(price)
	if err != nil {
		b.err = fmt.Errorf("parse stop loss: %w", err)
		return b
	}
	b.req.StopLoss = &d
	return b
}

// TakeProfit sets the protective take-profit price.
func (b *TradeBuilder) TakeProfit(price string) *TradeBuilder {
	if b.err != nil {
		return b
	}
	d, err := core.NewDecimal(price)
	if err != nil {
		b.err = fmt.Errorf("parse take profit: %w", err)
		return b
	}
	b.req.TakeProfit = &d
	return b
}

// ExpiredAt sets the expiration time for pending orders.
func (b *TradeBuilder) ExpiredAt(t time.Time) *TradeBuilder {
	if b.err != nil {
		return b
	}
	b.req.ExpiredTimestamp = t.UnixMilli()
	return b
}

// ImmediateOrCancel marks the trade immediate-or-cancel.
func (b *TradeBuilder) ImmediateOrCancel() *TradeBuilder {
	if b.err != nil {
		return b
	}
	b.req.ImmediateOrCancel = true
	return b
}

// Comment attaches a free-form comment.
func (b *TradeBuilder) Comment(comment string) *TradeBuilder {
	if b.err != nil {
		return b
	}
	b.req.Comment = comment
	return b
}

// ClientID sets the caller-chosen client identifier.
func (b *TradeBuilder) ClientID(id string) *TradeBuilder {
	if b.err != nil {
		return b
	}
	b.req.ClientID = id
	return b
}

// GeneratedClientID sets a random UUID as the client identifier so fills can
// be correlated without waiting for the venue-assigned id.
func (b *TradeBuilder) GeneratedClientID() *TradeBuilder {
	return b.ClientID(uuid.NewString())
}

// Build validates the accumulated request and returns it. Validation rules
// mirror CreateTrade: type and side must be set, the amount positive, and
// Limit/Stop trades need a price.
func (b *TradeBuilder) Build() (*core.CreateTradeRequest, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := validateCreate(b.req); err != nil {
		return nil, err
	}
	return b.req, nil
}
