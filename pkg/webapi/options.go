package webapi

import (
	"time"

	"github.com/rs/zerolog"

	"ttwebclient/internal/auth"
	"ttwebclient/internal/keyring"
	"ttwebclient/pkg/core"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger sets the client logger. The default is a no-op logger.
// Credentials are never logged at any level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTransport injects a custom transport. The caller keeps ownership and
// is responsible for closing it.
func WithTransport(t core.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithClock injects the signing clock. Tests fix it to make Authorization
// headers reproducible.
func WithClock(clock func() time.Time) Option {
	return func(c *Client) {
		c.signer = auth.NewSigner(auth.Clock(clock))
	}
}

// WithKeyring rotates signing among several credential triples instead of
// the single triple in the configuration.
func WithKeyring(ring *keyring.Ring) Option {
	return func(c *Client) {
		c.ring = ring
	}
}
