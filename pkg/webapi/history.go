package webapi

import (
	"context"
	"iter"

	"ttwebclient/pkg/core"
)

// GetTradeHistory fetches one page of account trade history. A nil request
// asks for the venue's default window.
func (c *Client) GetTradeHistory(ctx context.Context, req *core.TradeHistoryRequest) (*core.TradeHistoryReport, error) {
	if req == nil {
		req = &core.TradeHistoryRequest{}
	}
	var out core.TradeHistoryReport
	if err := c.do(ctx, "POST", c.endpoint("tradehistory"), req, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTradeHistoryByTrade fetches history restricted to a single trade.
func (c *Client) GetTradeHistoryByTrade(ctx context.Context, tradeID string, req *core.TradeHistoryRequest) (*core.TradeHistoryReport, error) {
	if req == nil {
		req = &core.TradeHistoryRequest{}
	}
	var out core.TradeHistoryReport
	if err := c.do(ctx, "POST", c.endpoint("tradehistory", tradeID), req, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TradeHistoryPages iterates over history pages, following each report's
// LastId until the venue marks the last report. The request's RequestFromId
// is advanced between pages; other fields pass through unchanged. Iteration
// stops early on the first error, which is yielded with a nil report.
func (c *Client) TradeHistoryPages(ctx context.Context, req *core.TradeHistoryRequest) iter.Seq2[*core.TradeHistoryReport, error] {
	return func(yield func(*core.TradeHistoryReport, error) bool) {
		page := core.TradeHistoryRequest{}
		if req != nil {
			page = *req
		}
		for {
			report, err := c.GetTradeHistory(ctx, &page)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(report, nil) {
				return
			}
			if report.IsLastReport || report.LastID == "" {
				return
			}
			page.RequestFromID = report.LastID
		}
	}
}
