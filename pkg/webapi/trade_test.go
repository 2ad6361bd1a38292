package webapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttwebclient/pkg/core"
)

func TestClient_CancelTrade(t *testing.T) {
	spy := &spyTransport{respond: respondJSON(200, `{"Id":123,"Status":"Canceled"}`)}
	client := newTestClient(t, spy)

	trade, err := client.CancelTrade(context.Background(), "T123")
	require.NoError(t, err)
	assert.Equal(t, core.TradeStatusCanceled, trade.Status)

	require.Len(t, spy.requests, 1)
	req := spy.requests[0]

	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, "http://x/api/v2/trade?type=Cancel&id=T123", req.URL)
	assert.Nil(t, req.Body, "cancellation carries no body")
	assert.Equal(t, expectedAuth("DELETE", "http://x/api/v2/trade?type=Cancel&id=T123", ""), req.Headers["Authorization"])
}

func TestClient_CloseTrade_OmitsAmount(t *testing.T) {
	spy := &spyTransport{}
	client := newTestClient(t, spy)

	_, err := client.CloseTrade(context.Background(), "T123")
	require.NoError(t, err)

	require.Len(t, spy.requests, 1)
	assert.Equal(t, "http://x/api/v2/trade?type=Close&id=T123", spy.requests[0].URL)
}

func TestClient_CloseTradeAmount(t *testing.T) {
	spy := &spyTransport{}
	client := newTestClient(t, spy)

	_, err := client.CloseTradeAmount(context.Background(), "T123", core.MustDecimal("5"))
	require.NoError(t, err)

	require.Len(t, spy.requests, 1)
	assert.Equal(t, "http://x/api/v2/trade?type=Close&id=T123&amount=5", spy.requests[0].URL)
}

func TestClient_CloseTradeAmount_RejectsNonPositive(t *testing.T) {
	spy := &spyTransport{}
	client := newTestClient(t, spy)

	_, err := client.CloseTradeAmount(context.Background(), "T123", core.MustDecimal("0"))
	assert.Error(t, err)
	assert.Empty(t, spy.requests)
}

func TestClient_CloseByTrade(t *testing.T) {
	spy := &spyTransport{}
	client := newTestClient(t, spy)

	_, err := client.CloseByTrade(context.Background(), "T123", "T456")
	require.NoError(t, err)

	require.Len(t, spy.requests, 1)
	assert.Equal(t, "http://x/api/v2/trade?type=CloseBy&id=T123&byid=T456", spy.requests[0].URL)
}

func TestClient_GetTrade_URL(t *testing.T) {
	spy := &spyTransport{}
	client := newTestClient(t, spy)

	_, err := client.GetTrade(context.Background(), "123")
	require.NoError(t, err)

	require.Len(t, spy.requests, 1)
	assert.Equal(t, "http://x/api/v2/trade/123", spy.requests[0].URL)
	assert.Equal(t, "GET", spy.requests[0].Method)
}

func TestClient_ModifyTrade(t *testing.T) {
	spy := &spyTransport{respond: respondJSON(200, `{"Id":7}`)}
	client := newTestClient(t, spy)

	price := core.MustDecimal("1.1000")
	trade, err := client.ModifyTrade(context.Background(), &core.ModifyTradeRequest{
		ID:    7,
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), trade.ID)

	require.Len(t, spy.requests, 1)
	req := spy.requests[0]
	assert.Equal(t, "PUT", req.Method)
	assert.Equal(t, "http://x/api/v2/trade", req.URL)
	assert.Contains(t, string(req.Body), `"Id":7`)
	assert.Contains(t, string(req.Body), `"Price":1.1000`)
}

func TestClient_ModifyTrade_RequiresID(t *testing.T) {
	spy := &spyTransport{}
	client := newTestClient(t, spy)

	_, err := client.ModifyTrade(context.Background(), &core.ModifyTradeRequest{})
	assert.Error(t, err)
	assert.Empty(t, spy.requests)
}

func TestClient_CreateTrade_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *core.CreateTradeRequest
	}{
		{"nil_request", nil},
		{"missing_type", &core.CreateTradeRequest{
			Side: core.TradeSideBuy, Symbol: "EURUSD", Amount: core.MustDecimal("1"),
		}},
		{"missing_side", &core.CreateTradeRequest{
			Type: core.TradeTypeMarket, Symbol: "EURUSD", Amount: core.MustDecimal("1"),
		}},
		{"missing_symbol", &core.CreateTradeRequest{
			Type: core.TradeTypeMarket, Side: core.TradeSideBuy, Amount: core.MustDecimal("1"),
		}},
		{"zero_amount", &core.CreateTradeRequest{
			Type: core.TradeTypeMarket, Side: core.TradeSideBuy, Symbol: "EURUSD",
		}},
		{"limit_without_price", &core.CreateTradeRequest{
			Type: core.TradeTypeLimit, Side: core.TradeSideBuy, Symbol: "EURUSD", Amount: core.MustDecimal("1"),
		}},
		{"stop_without_price", &core.CreateTradeRequest{
			Type: core.TradeTypeStop, Side: core.TradeSideSell, Symbol: "EURUSD", Amount: core.MustDecimal("1"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyTransport{}
			client := newTestClient(t, spy)

			_, err := client.CreateTrade(context.Background(), tt.req)
			assert.Error(t, err)
			assert.Empty(t, spy.requests, "invalid requests never reach the wire")
		})
	}
}

func TestClient_GetAllTrades(t *testing.T) {
	spy := &spyTransport{respond: respondJSON(200, `[{"Id":1},{"Id":2}]`)}
	client := newTestClient(t, spy)

	trades, err := client.GetAllTrades(context.Background())
	require.NoError(t, err)
	assert.Len(t, trades, 2)
	assert.Equal(t, "http://x/api/v2/trade", spy.requests[0].URL)
}
