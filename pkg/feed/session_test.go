package feed

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttwebclient/internal/auth"
	"ttwebclient/pkg/core"
)

// fakeWire captures outbound frames so tests can inspect them and inject
// replies through handleMessage, standing in for a live connection.
type fakeWire struct {
	mu     sync.Mutex
	frames [][]byte
	err    error
}

func (w *fakeWire) send(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.frames = append(w.frames, data)
	return nil
}

func (w *fakeWire) sent(i int) request {
	w.mu.Lock()
	defer w.mu.Unlock()
	var req request
	if err := sonic.Unmarshal(w.frames[i], &req); err != nil {
		panic(err)
	}
	return req
}

func newTestSession(t *testing.T, opts ...Option) (*Session, *fakeWire) {
	t.Helper()
	s := NewSession("ws://x", core.Credentials{ID: "A", Key: "B", Secret: "C"}, opts...)
	wire := &fakeWire{}
	s.send = wire.send
	return s, wire
}

func reply(s *Session, id, result string) {
	s.handleMessage([]byte(`{"Id":"` + id + `","Result":` + result + `}`))
}

func TestSession_Call_CorrelatesById(t *testing.T) {
	s, wire := newTestSession(t)

	done := make(chan struct{})
	var result []byte
	var callErr error
	go func() {
		defer close(done)
		result, callErr = s.Call(context.Background(), "GetAccount", nil)
	}()

	require.Eventually(t, func() bool {
		wire.mu.Lock()
		defer wire.mu.Unlock()
		return len(wire.frames) == 1
	}, time.Second, 5*time.Millisecond)

	sent := wire.sent(0)
	assert.Equal(t, "GetAccount", sent.Request)
	require.NotEmpty(t, sent.ID)

	// A reply for a different id must not resolve the call.
	reply(s, "unrelated", `{}`)
	select {
	case <-done:
		t.Fatal("call resolved by mismatched id")
	case <-time.After(20 * time.Millisecond):
	}

	reply(s, sent.ID, `{"Balance":100}`)
	<-done

	require.NoError(t, callErr)
	assert.JSONEq(t, `{"Balance":100}`, string(result))

	// The pending entry is gone once resolved.
	s.mu.Lock()
	assert.Empty(t, s.pending)
	s.mu.Unlock()
}

func TestSession_Call_VenueError(t *testing.T) {
	s, wire := newTestSession(t)

	done := make(chan error, 1)
	go func() {
		_, err := s.Call(context.Background(), "GetAccount", nil)
		done <- err
	}()

	require.Eventually(t, func() bool {
		wire.mu.Lock()
		defer wire.mu.Unlock()
		return len(wire.frames) == 1
	}, time.Second, 5*time.Millisecond)

	id := wire.sent(0).ID
	s.handleMessage([]byte(`{"Id":"` + id + `","Error":{"Code":401,"Message":"not authorized"}}`))

	err := <-done
	require.Error(t, err)
	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 401, ferr.Code)
}

func TestSession_Call_ContextCancellationRemovesEntry(t *testing.T) {
	s, _ := newTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.Call(ctx, "GetAccount", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	s.mu.Lock()
	assert.Empty(t, s.pending)
	s.mu.Unlock()
}

func TestSession_Call_SendFailureRemovesEntry(t *testing.T) {
	s, wire := newTestSession(t)
	wire.err = fmt.Errorf("feed not connected")

	_, err := s.Call(context.Background(), "GetAccount", nil)
	require.Error(t, err)

	s.mu.Lock()
	assert.Empty(t, s.pending)
	s.mu.Unlock()
}

func TestSession_TeardownFailsPendingCalls(t *testing.T) {
	s, wire := newTestSession(t)

	done := make(chan error, 1)
	go func() {
		_, err := s.Call(context.Background(), "GetAccount", nil)
		done <- err
	}()

	require.Eventually(t, func() bool {
		wire.mu.Lock()
		defer wire.mu.Unlock()
		return len(wire.frames) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, s.Close())

	assert.ErrorIs(t, <-done, core.ErrSessionClosed)

	// New calls are refused after teardown.
	_, err := s.Call(context.Background(), "GetAccount", nil)
	assert.ErrorIs(t, err, core.ErrSessionClosed)
}

func TestSession_Login(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	s, wire := newTestSession(t, WithClock(func() time.Time { return fixed }))

	done := make(chan error, 1)
	go func() {
		done <- s.Login(context.Background())
	}()

	require.Eventually(t, func() bool {
		wire.mu.Lock()
		defer wire.mu.Unlock()
		return len(wire.frames) == 1
	}, time.Second, 5*time.Millisecond)

	sent := wire.sent(0)
	assert.Equal(t, "Login", sent.Request)

	params, err := sonic.Marshal(sent.Params)
	require.NoError(t, err)
	var lp loginParams
	require.NoError(t, sonic.Unmarshal(params, &lp))

	assert.Equal(t, "HMAC", lp.AuthType)
	assert.Equal(t, "A", lp.WebAPIID)
	assert.Equal(t, "B", lp.WebAPIKey)
	assert.Equal(t, int64(1700000000000), lp.Timestamp)
	assert.Equal(t, auth.Signature("C", "1700000000000AB"), lp.Signature)

	reply(s, sent.ID, `{}`)
	assert.NoError(t, <-done)
}

func TestSession_Login_IncompleteCredentials(t *testing.T) {
	s := NewSession("ws://x", core.Credentials{ID: "A"})
	wire := &fakeWire{}
	s.send = wire.send

	err := s.Login(context.Background())
	require.Error(t, err)
	assert.True(t, core.IsCredentialError(err))
	assert.Empty(t, wire.frames, "nothing may be sent with incomplete credentials")
}

func TestSession_TickNotification(t *testing.T) {
	s, wire := newTestSession(t)

	ticks := make(chan core.Tick, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.SubscribeTicks(context.Background(), []string{"EURUSD"}, func(tick core.Tick) {
			ticks <- tick
		})
	}()

	require.Eventually(t, func() bool {
		wire.mu.Lock()
		defer wire.mu.Unlock()
		return len(wire.frames) == 1
	}, time.Second, 5*time.Millisecond)

	reply(s, wire.sent(0).ID, `{}`)
	require.NoError(t, <-done)

	s.handleMessage([]byte(`{"Response":"TickNotify","Result":{"Symbol":"EURUSD","Timestamp":1700000000000}}`))

	select {
	case tick := <-ticks:
		assert.Equal(t, "EURUSD", tick.Symbol)
	case <-time.After(time.Second):
		t.Fatal("tick not delivered")
	}
}

func TestSession_MalformedMessageIgnored(t *testing.T) {
	s, _ := newTestSession(t)

	assert.NotPanics(t, func() {
		s.handleMessage([]byte(`not json`))
		s.handleMessage([]byte(`{"Response":"Unknown"}`))
	})
}
