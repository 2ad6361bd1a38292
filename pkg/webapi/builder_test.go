package webapi

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttwebclient/pkg/core"
)

func TestTradeBuilder_MarketBuy(t *testing.T) {
	req, err := NewTradeBuilder("EURUSD").
		Buy().
		Market().
		Amount("10000").
		Build()
	require.NoError(t, err)

	assert.Equal(t, core.TradeTypeMarket, req.Type)
	assert.Equal(t, core.TradeSideBuy, req.Side)
	assert.Equal(t, "EURUSD", req.Symbol)
	want := core.MustDecimal("10000")
	assert.Zero(t, req.Amount.Cmp(&want.Decimal))
}

func TestTradeBuilder_LimitSellWithProtection(t *testing.T) {
	expiry := time.UnixMilli(1800000000000)
	req, err := NewTradeBuilder("EURUSD").
		Sell().
		Limit().
		Price("1.0950").
		Amount("5000").
		StopLoss("1.1050").
		TakeProfit("1.0800").
		ExpiredAt(expiry).
		ImmediateOrCancel().
		Comment("hedge").
		Build()
	require.NoError(t, err)

	require.NotNil(t, req.Price)
	require.NotNil(t, req.StopLoss)
	require.NotNil(t, req.TakeProfit)
	assert.Equal(t, int64(1800000000000), req.ExpiredTimestamp)
	assert.True(t, req.ImmediateOrCancel)
	assert.Equal(t, "hedge", req.Comment)
}

func TestTradeBuilder_GeneratedClientID(t *testing.T) {
	req, err := NewTradeBuilder("EURUSD").
		Buy().
		Market().
		Amount("1000").
		GeneratedClientID().
		Build()
	require.NoError(t, err)

	_, parseErr := uuid.Parse(req.ClientID)
	assert.NoError(t, parseErr)
}

func TestTradeBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*core.CreateTradeRequest, error)
	}{
		{
			"bad_price",
			func() (*core.CreateTradeRequest, error) {
				return NewTradeBuilder("EURUSD").Buy().Limit().Price("not-a-number").Amount("1").Build()
			},
		},
		{
			"bad_amount",
			func() (*core.CreateTradeRequest, error) {
				return NewTradeBuilder("EURUSD").Buy().Market().Amount("??").Build()
			},
		},
		{
			"limit_without_price",
			func() (*core.CreateTradeRequest, error) {
				return NewTradeBuilder("EURUSD").Buy().Limit().Amount("1").Build()
			},
		},
		{
			"no_side",
			func() (*core.CreateTradeRequest, error) {
				return NewTradeBuilder("EURUSD").Market().Amount("1").Build()
			},
		},
		{
			"negative_amount",
			func() (*core.CreateTradeRequest, error) {
				return NewTradeBuilder("EURUSD").Buy().Market().Amount("-5").Build()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.build()
			assert.Error(t, err)
			assert.Nil(t, req)
		})
	}
}

func TestTradeBuilder_FirstErrorSticks(t *testing.T) {
	_, err := NewTradeBuilder("EURUSD").
		Buy().
		Limit().
		Price("garbage").
		Amount("also-garbage").
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}
