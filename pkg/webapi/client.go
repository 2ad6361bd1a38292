// Package webapi is an authenticated HTTP client for a trading venue's
// Web API. It maps each logical account, market-data and order-management
// operation to a concrete request, signs private operations with the
// venue's HMAC scheme and surfaces raw responses without interpretation.
//
// Every call is a one-shot, stateless request/response exchange. The client
// holds no session and performs no retries or caching; it is safe for
// concurrent use.
package webapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"ttwebclient/internal/auth"
	"ttwebclient/internal/circuitbreaker"
	"ttwebclient/internal/keyring"
	"ttwebclient/internal/ratelimit"
	"ttwebclient/internal/transport"
	"ttwebclient/pkg/core"
)

const apiPrefix = "/api/v2"

// Client dispatches Web API operations. Construct it with New; the zero
// value is not usable.
type Client struct {
	baseURL   string
	creds     core.Credentials
	signer    *auth.Signer
	transport core.Transport
	ring      *keyring.Ring
	limiter   *ratelimit.Limiter
	breaker   *circuitbreaker.Breaker
	logger    zerolog.Logger
	ownsHTTP  *transport.Client
}

// New creates a Client from the given configuration. It validates the
// configuration and returns a ConfigurationError instead of panicking, so
// callers can assemble configs with explicit error handling.
func New(cfg *core.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, &core.ConfigurationError{Field: "Config", Reason: "configuration is required"}
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = core.DefaultConfig(cfg.BaseURL).Timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		creds:   cfg.Credentials,
		signer:  auth.NewSigner(nil),
		logger:  zerolog.Nop(),
	}
	if cfg.RateLimitRequests > 0 {
		c.limiter = ratelimit.New(cfg.RateLimitRequests, cfg.RateLimitPeriod)
	}
	if cfg.CircuitBreakerEnabled {
		c.breaker = circuitbreaker.New(circuitbreaker.Config{
			FailThreshold:    cfg.CircuitBreakerFailThreshold,
			SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.CircuitBreakerTimeout,
		})
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		httpClient := transport.NewClient(cfg.Timeout, transport.WithLogger(c.logger))
		c.transport = httpClient
		c.ownsHTTP = httpClient
	}

	return c, nil
}

// Close releases the default HTTP transport when the client created it.
// A transport injected via WithTransport is owned by the caller.
func (c *Client) Close() error {
	if c.ownsHTTP != nil {
		return c.ownsHTTP.Close()
	}
	return nil
}

// credentials returns the triple used to sign the next request, consulting
// the keyring when one is configured.
func (c *Client) credentials() (core.Credentials, error) {
	if c.ring != nil {
		return c.ring.Current()
	}
	return c.creds, nil
}

// get dispatches an unsigned or signed GET and decodes the response into out.
func (c *Client) get(ctx context.Context, rawURL string, private bool, out any) error {
	return c.do(ctx, "GET", rawURL, nil, private, out)
}

// do builds, signs and dispatches one request. The URL must be fully
// assembled before this point: the signature covers it byte-for-byte.
func (c *Client) do(ctx context.Context, method, rawURL string, body any, private bool, out any) error {
	req := core.NewRequest(method, rawURL)

	if body != nil {
		data, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		req.SetBody(data).SetHeader("Content-Type", "application/json")
	}

	if private {
		creds, err := c.credentials()
		if err != nil {
			return err
		}
		hdr, err := c.signer.Sign(creds, method, rawURL, req.Body)
		if err != nil {
			return err
		}
		req.SetHeader("Authorization", hdr.Value())
	}

	if c.breaker != nil && !c.breaker.Allow() {
		return core.ErrCircuitBreakerOpen
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	resp, err := c.transport.RoundTrip(ctx, req)
	if c.breaker != nil {
		c.breaker.Record(err == nil && resp != nil && resp.IsSuccess())
	}
	if err != nil {
		if private && c.ring != nil {
			c.ring.OnError()
		}
		return &core.TransportError{Method: method, URL: rawURL, Err: err}
	}

	if !resp.IsSuccess() {
		c.logger.Debug().
			Str("method", method).
			Str("url", rawURL).
			Int("status", resp.StatusCode).
			Msg("webapi error response")
		return &core.HTTPError{
			Status: resp.StatusCode,
			Body:   resp.Body,
			Method: method,
			URL:    rawURL,
		}
	}

	if private && c.ring != nil {
		c.ring.MarkUsed()
	}

	if out != nil && len(resp.Body) > 0 {
		if err := sonic.Unmarshal(resp.Body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// endpoint joins the base address, the /api/v2 prefix and path segments.
// Each segment is percent-encoded, so "EUR/USD" becomes "EUR%2FUSD".
func (c *Client) endpoint(segments ...string) string {
	var sb strings.Builder
	sb.WriteString(c.baseURL)
	sb.WriteString(apiPrefix)
	for _, seg := range segments {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(seg))
	}
	return sb.String()
}

// queryPair is one query-string parameter. Pairs are rendered in the order
// the endpoint defines them, never sorted: the signed URL must equal the
// transmitted URL character for character.
type queryPair struct {
	key   string
	value string
}

func withQuery(endpoint string, pairs ...queryPair) string {
	if len(pairs) == 0 {
		return endpoint
	}
	var sb strings.Builder
	sb.WriteString(endpoint)
	for i, p := range pairs {
		if i == 0 {
			sb.WriteString("?")
		} else {
			sb.WriteString("&")
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

// Do dispatches an arbitrary operation against the venue and decodes the
// response into out when it is non-nil. It is the untyped escape hatch
// behind every typed operation; path segments are percent-encoded and the
// query pairs keep their order.
func (c *Client) Do(ctx context.Context, method string, private bool, body any, out any, segments ...string) error {
	return c.do(ctx, method, c.endpoint(segments...), body, private, out)
}
