package webapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttwebclient/pkg/core"
)

func TestClient_PublicURLs(t *testing.T) {
	tests := []struct {
		name    string
		call    func(c *Client) error
		wantURL string
	}{
		{
			"trade_session",
			func(c *Client) error {
				_, err := c.GetPublicTradeSession(context.Background())
				return err
			},
			"http://x/api/v2/public/tradesession",
		},
		{
			"all_currencies",
			func(c *Client) error {
				_, err := c.GetPublicAllCurrencies(context.Background())
				return err
			},
			"http://x/api/v2/public/currency",
		},
		{
			"one_currency",
			func(c *Client) error {
				_, err := c.GetPublicCurrency(context.Background(), "USD")
				return err
			},
			"http://x/api/v2/public/currency/USD",
		},
		{
			"symbol_with_slash_is_percent_encoded",
			func(c *Client) error {
				_, err := c.GetPublicSymbol(context.Background(), "EUR/USD")
				return err
			},
			"http://x/api/v2/public/symbol/EUR%2FUSD",
		},
		{
			"all_ticks",
			func(c *Client) error {
				_, err := c.GetPublicAllTicks(context.Background())
				return err
			},
			"http://x/api/v2/public/tick",
		},
		{
			"one_tick",
			func(c *Client) error {
				_, err := c.GetPublicTick(context.Background(), "EURUSD")
				return err
			},
			"http://x/api/v2/public/tick/EURUSD",
		},
		{
			"level2",
			func(c *Client) error {
				_, err := c.GetPublicTickLevel2(context.Background(), "EURUSD")
				return err
			},
			"http://x/api/v2/public/level2/EURUSD",
		},
		{
			"all_level2",
			func(c *Client) error {
				_, err := c.GetPublicAllTicksLevel2(context.Background())
				return err
			},
			"http://x/api/v2/public/level2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyTransport{respond: respondJSON(200, `[]`)}
			client := newTestClient(t, spy)

			require.NoError(t, tt.call(client))
			require.Len(t, spy.requests, 1)
			assert.Equal(t, "GET", spy.requests[0].Method)
			assert.Equal(t, tt.wantURL, spy.requests[0].URL)
			assert.Empty(t, spy.requests[0].Headers["Authorization"])
		})
	}
}

func TestClient_PrivateMarketDataSigned(t *testing.T) {
	spy := &spyTransport{respond: respondJSON(200, `[]`)}
	client := newTestClient(t, spy)

	_, err := client.GetTick(context.Background(), "EURUSD")
	require.NoError(t, err)

	require.Len(t, spy.requests, 1)
	req := spy.requests[0]
	assert.Equal(t, "http://x/api/v2/tick/EURUSD", req.URL)
	assert.Equal(t, expectedAuth("GET", "http://x/api/v2/tick/EURUSD", ""), req.Headers["Authorization"])
}

func TestClient_PublicTick_OverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/public/tick/EURUSD", r.URL.EscapedPath())
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Symbol":"EURUSD","Timestamp":1700000000000,"BestBid":{"Price":1.0950,"Volume":500000},"BestAsk":{"Price":1.0952,"Volume":750000}}]`))
	}))
	defer server.Close()

	client, err := New(core.DefaultConfig(server.URL))
	require.NoError(t, err)
	defer client.Close()

	ticks, err := client.GetPublicTick(context.Background(), "EURUSD")
	require.NoError(t, err)

	require.Len(t, ticks, 1)
	assert.Equal(t, "EURUSD", ticks[0].Symbol)
	require.NotNil(t, ticks[0].BestBid)
	bid := core.MustDecimal("1.0950")
	assert.Zero(t, ticks[0].BestBid.Price.Cmp(&bid.Decimal))
}
