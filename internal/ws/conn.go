// Package ws wraps a gws websocket connection with a state machine,
// keepalive handling and reconnection with exponential backoff. It delivers
// every inbound text message to a single handler; request/reply correlation
// lives one layer up, in the feed session.
package ws

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lxzan/gws"
	"github.com/rs/zerolog"
)

// Config holds configuration options for a feed connection.
type Config struct {
	// URL is the websocket endpoint to connect to.
	URL string
	// ReconnectEnabled turns on automatic reconnection after a drop.
	ReconnectEnabled bool
	// ReconnectBaseWait is the wait before the first reconnect attempt.
	ReconnectBaseWait time.Duration
	// ReconnectMaxWait caps the backoff between attempts.
	ReconnectMaxWait time.Duration
	// PingInterval is how often pings keep the connection alive.
	PingInterval time.Duration
	// PongWait is how long to wait for a pong before the connection is dead.
	PongWait time.Duration
}

// MessageHandler receives every inbound text message.
type MessageHandler func(data []byte)

// DisconnectHandler is invoked when an established connection drops.
type DisconnectHandler func(err error)

// Conn manages one websocket connection.
type Conn struct {
	config       Config
	state        atomic.Int32
	handler      *eventHandler
	onMessage    MessageHandler
	onDisconnect DisconnectHandler
	logger       zerolog.Logger

	mu                sync.RWMutex
	conn              *gws.Conn
	connectedChan     chan struct{}
	stopChan          chan struct{}
	wg                sync.WaitGroup
	reconnectAttempts int
}

type eventHandler struct {
	conn *Conn
}

// NewConn creates a connection. Messages are delivered to onMessage from
// the read loop goroutine. Zero-valued config fields get defaults.
func NewConn(config Config, onMessage MessageHandler) *Conn {
	if config.ReconnectBaseWait == 0 {
		config.ReconnectBaseWait = 1 * time.Second
	}
	if config.ReconnectMaxWait == 0 {
		config.ReconnectMaxWait = 30 * time.Second
	}
	if config.PingInterval == 0 {
		config.PingInterval = 10 * time.Second
	}
	if config.PongWait == 0 {
		config.PongWait = 20 * time.Second
	}

	c := &Conn{
		config:        config,
		onMessage:     onMessage,
		connectedChan: make(chan struct{}),
		stopChan:      make(chan struct{}),
		logger:        zerolog.Nop(),
	}
	c.handler = &eventHandler{conn: c}
	return c
}

// SetLogger configures the connection logger.
func (c *Conn) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// SetDisconnectHandler registers a callback for connection drops. The feed
// session uses it to fail pending calls on teardown.
func (c *Conn) SetDisconnectHandler(handler DisconnectHandler) {
	c.onDisconnect = handler
}

func (h *eventHandler) OnOpen(socket *gws.Conn) {
	h.conn.storeState(StateConnected)

	h.conn.mu.Lock()
	h.conn.reconnectAttempts = 0
	select {
	case <-h.conn.connectedChan:
	default:
		close(h.conn.connectedChan)
	}
	h.conn.mu.Unlock()

	h.conn.logger.Info().
		Str("url", h.conn.config.URL).
		Msg("feed connected")

	_ = socket.SetDeadline(time.Now().Add(h.conn.config.PingInterval + h.conn.config.PongWait))
}

func (h *eventHandler) OnClose(socket *gws.Conn, err error) {
	h.conn.storeState(StateDisconnected)

	h.conn.mu.Lock()
	h.conn.connectedChan = make(chan struct{})
	h.conn.mu.Unlock()

	h.conn.logger.Warn().
		Err(err).
		Str("url", h.conn.config.URL).
		Msg("feed disconnected")

	if h.conn.onDisconnect != nil {
		h.conn.onDisconnect(err)
	}

	if h.conn.config.ReconnectEnabled {
		select {
		case <-h.conn.stopChan:
			return
		default:
			go h.conn.attemptReconnect()
		}
	}
}

func (h *eventHandler) OnPing(socket *gws.Conn, payload []byte) {
	_ = socket.SetDeadline(time.Now().Add(h.conn.config.PingInterval + h.conn.config.PongWait))
	_ = socket.WritePong(nil)
}

func (h *eventHandler) OnPong(socket *gws.Conn, payload []byte) {
	_ = socket.SetDeadline(time.Now().Add(h.conn.config.PingInterval + h.conn.config.PongWait))
}

func (h *eventHandler) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()

	data := message.Bytes()
	if len(data) == 0 {
		return
	}

	h.conn.logger.Debug().Str("data", string(data)).Msg("feed message")

	if h.conn.onMessage != nil {
		// message.Bytes is only valid until Close; hand the handler a copy.
		buf := make([]byte, len(data))
		copy(buf, data)
		h.conn.onMessage(buf)
	}
}

// Connect establishes the websocket connection and blocks until the
// handshake completes, the context expires, or the connection is closed.
func (c *Conn) Connect(ctx context.Context) error {
	if !c.swapState(StateDisconnected, StateConnecting) &&
		!c.swapState(StateReconnecting, StateConnecting) {
		current := c.State()
		if current == StateConnected {
			return nil
		}
		return fmt.Errorf("invalid state for connect: %s", current)
	}

	socket, _, err := gws.NewClient(c.handler, &gws.ClientOption{
		Addr: c.config.URL,
	})
	if err != nil {
		c.storeState(StateDisconnected)
		return fmt.Errorf("connect feed: %w", err)
	}

	c.mu.Lock()
	c.conn = socket
	connected := c.connectedChan
	c.mu.Unlock()

	c.wg.Go(func() {
		socket.ReadLoop()
	})

	select {
	case <-connected:
		return nil
	case <-ctx.Done():
		_ = socket.NetConn().Close()
		c.storeState(StateDisconnected)
		return ctx.Err()
	case <-c.stopChan:
		_ = socket.NetConn().Close()
		c.storeState(StateClosed)
		return fmt.Errorf("connection stopped")
	}
}

// Close shuts the connection down for good.
func (c *Conn) Close() error {
	if !c.swapState(StateConnected, StateClosed) &&
		!c.swapState(StateConnecting, StateClosed) &&
		!c.swapState(StateReconnecting, StateClosed) &&
		!c.swapState(StateDisconnected, StateClosed) {
		return nil
	}

	close(c.stopChan)

	c.mu.Lock()
	if c.conn != nil {
		_ = c.conn.NetConn().Close()
	}
	c.mu.Unlock()

	c.wg.Wait()
	return nil
}

// Send transmits raw bytes as a text frame.
func (c *Conn) Send(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.conn == nil || c.State() != StateConnected {
		return fmt.Errorf("feed not connected")
	}
	return c.conn.WriteMessage(gws.OpcodeText, data)
}

// State returns the current connection state.
func (c *Conn) State() ConnState {
	return ConnState(c.state.Load())
}

// IsConnected returns true if the connection is established.
func (c *Conn) IsConnected() bool {
	return c.State() == StateConnected
}

func (c *Conn) storeState(s ConnState) {
	c.state.Store(int32(s))
}

func (c *Conn) swapState(from, to ConnState) bool {
	return c.state.CompareAndSwap(int32(from), int32(to))
}

func (c *Conn) attemptReconnect() {
	if !c.swapState(StateDisconnected, StateReconnecting) {
		return
	}

	for {
		select {
		case <-c.stopChan:
			return
		default:
		}

		c.mu.Lock()
		attempts := c.reconnectAttempts
		c.reconnectAttempts++
		c.mu.Unlock()

		wait := c.backoff(attempts)
		c.logger.Info().
			Dur("wait", wait).
			Int("attempt", attempts+1).
			Msg("reconnecting feed")

		select {
		case <-time.After(wait):
		case <-c.stopChan:
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := c.Connect(ctx)
		cancel()
		if err != nil {
			c.logger.Error().Err(err).
				Int("attempt", attempts+1).
				Msg("reconnect failed")
			c.storeState(StateReconnecting)
			continue
		}

		c.logger.Info().Msg("feed reconnected")
		return
	}
}

func (c *Conn) backoff(attempts int) time.Duration {
	wait := c.config.ReconnectBaseWait << attempts
	if wait > c.config.ReconnectMaxWait || wait <= 0 {
		return c.config.ReconnectMaxWait
	}
	return wait
}
