// Package feed is the push-notification counterpart of the Web API client.
// It speaks the venue's JSON-RPC-like message protocol over a websocket:
// requests carry {Id, Request, Params}, replies echo the Id, and the session
// correlates them through a pending table it owns. Notifications without an
// Id are dispatched to subscription handlers.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"ttwebclient/internal/auth"
	"ttwebclient/internal/ws"
	"ttwebclient/pkg/core"
)

// request is the outbound message envelope.
type request struct {
	ID      string `json:"Id"`
	Request string `json:"Request"`
	Params  any    `json:"Params,omitempty"`
}

// response is the inbound message envelope. Replies echo the request Id;
// notifications leave it empty.
type response struct {
	ID       string          `json:"Id,omitempty"`
	Response string          `json:"Response,omitempty"`
	Result   json.RawMessage `json:"Result,omitempty"`
	Error    *Error          `json:"Error,omitempty"`
}

// Error is a venue-reported feed error.
type Error struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("feed: error %d: %s", e.Code, e.Message)
}

type callResult struct {
	data []byte
	err  error
}

// loginParams is the HMAC login handshake payload. The signature covers
// timestamp, id and key, concatenated with no separators, keyed by the
// secret, same primitives as the HTTP signer.
type loginParams struct {
	AuthType  string `json:"AuthType"`
	WebAPIID  string `json:"WebApiId"`
	WebAPIKey string `json:"WebApiKey"`
	Timestamp int64  `json:"Timestamp"`
	Signature string `json:"Signature"`
}

// TickHandler receives streamed top-of-book ticks.
type TickHandler func(tick core.Tick)

// Session is one feed connection. All pending request state is owned here,
// keyed by request id; entries are removed on completion, on call
// cancellation and on connection teardown.
type Session struct {
	conn   *ws.Conn
	creds  core.Credentials
	clock  func() time.Time
	logger zerolog.Logger

	// send is the transmit path; split out so tests can intercept frames.
	send func(data []byte) error

	nextID atomic.Int64

	mu      sync.Mutex
	pending map[string]chan callResult
	onTick  TickHandler
	closed  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock injects the login timestamp clock. Tests fix it.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// NewSession creates a feed session for the given websocket URL. The
// credential triple is only needed for Login; a public-data session may
// pass an empty one.
func NewSession(url string, creds core.Credentials, opts ...Option) *Session {
	s := &Session{
		creds:   creds,
		clock:   time.Now,
		logger:  zerolog.Nop(),
		pending: make(map[string]chan callResult),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.conn = ws.NewConn(ws.Config{
		URL:              url,
		ReconnectEnabled: true,
	}, s.handleMessage)
	s.conn.SetLogger(s.logger)
	s.conn.SetDisconnectHandler(func(err error) {
		if err == nil {
			err = core.ErrSessionClosed
		}
		s.failPending(err)
	})
	s.send = s.conn.Send
	return s
}

// Connect establishes the websocket connection.
func (s *Session) Connect(ctx context.Context) error {
	return s.conn.Connect(ctx)
}

// Close tears the session down. Every pending call fails with
// ErrSessionClosed and the connection will not reconnect.
func (s *Session) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.failPending(core.ErrSessionClosed)
	return s.conn.Close()
}

// Call sends one request and blocks until the reply with the matching id
// arrives, the context expires, or the session is torn down. The pending
// entry is removed on every exit path.
func (s *Session) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id := strconv.FormatInt(s.nextID.Add(1), 10)

	ch := make(chan callResult, 1)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, core.ErrSessionClosed
	}
	s.pending[id] = ch
	s.mu.Unlock()

	data, err := sonic.Marshal(request{ID: id, Request: method, Params: params})
	if err != nil {
		s.remove(id)
		return nil, fmt.Errorf("marshal feed request: %w", err)
	}
	if err := s.send(data); err != nil {
		s.remove(id)
		return nil, err
	}

	select {
	case res := <-ch:
		return res.data, res.err
	case <-ctx.Done():
		s.remove(id)
		return nil, ctx.Err()
	}
}

// Login authenticates the session with the venue's HMAC handshake. It fails
// with a CredentialError before sending anything when the triple is
// incomplete.
func (s *Session) Login(ctx context.Context) error {
	if err := s.creds.Validate(); err != nil {
		return err
	}

	timestamp := s.clock().UnixMilli()
	payload := strconv.FormatInt(timestamp, 10) + s.creds.ID + s.creds.Key

	_, err := s.Call(ctx, "Login", loginParams{
		AuthType:  auth.Scheme,
		WebAPIID:  s.creds.ID,
		WebAPIKey: s.creds.Key,
		Timestamp: timestamp,
		Signature: auth.Signature(s.creds.Secret, payload),
	})
	return err
}

// SubscribeTicks registers a tick handler and asks the venue to stream
// ticks for the given symbols.
func (s *Session) SubscribeTicks(ctx context.Context, symbols []string, handler TickHandler) error {
	s.mu.Lock()
	s.onTick = handler
	s.mu.Unlock()

	_, err := s.Call(ctx, "SubscribeTicks", map[string]any{"Symbols": symbols})
	return err
}

// IsConnected reports whether the underlying connection is established.
func (s *Session) IsConnected() bool {
	return s.conn.IsConnected()
}

// handleMessage runs on the read loop: replies resolve their pending entry,
// notifications go to the subscription handlers.
func (s *Session) handleMessage(data []byte) {
	var env response
	if err := sonic.Unmarshal(data, &env); err != nil {
		s.logger.Warn().Err(err).Msg("malformed feed message")
		return
	}

	if env.ID != "" {
		s.mu.Lock()
		ch, ok := s.pending[env.ID]
		if ok {
			delete(s.pending, env.ID)
		}
		s.mu.Unlock()

		if !ok {
			s.logger.Debug().Str("id", env.ID).Msg("reply for unknown request id")
			return
		}
		if env.Error != nil {
			ch <- callResult{err: env.Error}
			return
		}
		ch <- callResult{data: env.Result}
		return
	}

	switch env.Response {
	case "TickNotify":
		s.mu.Lock()
		handler := s.onTick
		s.mu.Unlock()
		if handler == nil {
			return
		}
		var tick core.Tick
		if err := sonic.Unmarshal(env.Result, &tick); err != nil {
			s.logger.Warn().Err(err).Msg("malformed tick notification")
			return
		}
		handler(tick)
	default:
		s.logger.Debug().Str("response", env.Response).Msg("unhandled feed notification")
	}
}

// failPending resolves every outstanding call with err and clears the table.
func (s *Session) failPending(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.pending {
		ch <- callResult{err: err}
		delete(s.pending, id)
	}
}

func (s *Session) remove(id string) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}
