// Package transport provides the HTTP transport used to dispatch signed
// Web API requests.
package transport

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"ttwebclient/pkg/core"
)

// Client is the resty-backed implementation of core.Transport. It transmits
// the request URL and body exactly as given; the Authorization signature was
// computed over those bytes. It performs no retries.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the transport logger. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates an HTTP transport with the given request timeout.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.AddContentTypeEncoder("application/json", func(w io.Writer, v any) error {
		data, err := sonic.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	client.AddContentTypeDecoder("application/json", func(r io.Reader, v any) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return sonic.Unmarshal(data, v)
	})

	c := &Client{
		client: client,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		c.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})
	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		c.logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return c
}

// RoundTrip implements core.Transport. The URL is passed to resty fully
// assembled so the query string reaches the wire in its signed order.
func (c *Client) RoundTrip(ctx context.Context, req *core.Request) (*core.Response, error) {
	switch req.Method {
	case "GET", "POST", "PUT", "DELETE":
	default:
		return nil, fmt.Errorf("unsupported http method: %s", req.Method)
	}

	r := c.client.R().SetContext(ctx)
	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request failed")
		return nil, err
	}

	headers := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &core.Response{
		StatusCode: resp.StatusCode(),
		Headers:    headers,
		Body:       resp.Bytes(),
	}, nil
}

// Close releases the underlying resty client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
