// Package circuitbreaker implements an opt-in three-state breaker used to
// stop hammering a venue that is persistently failing.
package circuitbreaker

import (
	"sync"
	"sync/atomic"
	"time"
)

// State is the breaker state.
type State int32

const (
	// StateClosed lets all requests through.
	StateClosed State = iota
	// StateOpen rejects requests until the timeout elapses.
	StateOpen
	// StateHalfOpen lets probe requests through after the timeout.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config holds breaker thresholds.
type Config struct {
	// FailThreshold is the number of consecutive failures that opens the breaker.
	FailThreshold int
	// SuccessThreshold is the number of consecutive probe successes that closes it.
	SuccessThreshold int
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
}

// Breaker is a consecutive-failure circuit breaker. It is safe for
// concurrent use.
type Breaker struct {
	mu           sync.Mutex
	state        State
	failures     int
	successes    int
	lastFailTime time.Time
	config       Config
	metrics      *metrics
}

type metrics struct {
	total        atomic.Int64
	successes    atomic.Int64
	failures     atomic.Int64
	stateChanges atomic.Int32
}

// New creates a Breaker in the closed state.
func New(config Config) *Breaker {
	return &Breaker{
		state:   StateClosed,
		config:  config,
		metrics: &metrics{},
	}
}

// Allow reports whether a request may proceed. An open breaker transitions
// to half-open once its timeout has elapsed.
func (b *Breaker) Allow() bool {
	b.metrics.total.Add(1)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && time.Since(b.lastFailTime) >= b.config.Timeout {
		b.transitionTo(StateHalfOpen)
	}
	return b.state != StateOpen
}

// Record feeds the outcome of a request back into the breaker.
func (b *Breaker) Record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && time.Since(b.lastFailTime) >= b.config.Timeout {
		b.transitionTo(StateHalfOpen)
	}

	if success {
		b.metrics.successes.Add(1)
	} else {
		b.metrics.failures.Add(1)
	}

	switch b.state {
	case StateClosed:
		if success {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.config.FailThreshold {
			b.lastFailTime = time.Now()
			b.transitionTo(StateOpen)
		}
	case StateHalfOpen:
		if !success {
			b.lastFailTime = time.Now()
			b.successes = 0
			b.transitionTo(StateOpen)
			return
		}
		b.successes++
		if b.successes >= b.config.SuccessThreshold {
			b.failures = 0
			b.successes = 0
			b.transitionTo(StateClosed)
		}
	case StateOpen:
		if !success {
			b.lastFailTime = time.Now()
		}
	}
}

func (b *Breaker) transitionTo(state State) {
	b.state = state
	b.metrics.stateChanges.Add(1)
}

// State returns the current breaker state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Reset returns the breaker to the closed state and clears its counters.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StateClosed
	b.failures = 0
	b.successes = 0
}

// Failures returns the current consecutive-failure count.
func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

// Successes returns the current half-open probe success count.
func (b *Breaker) Successes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.successes
}

// Metrics returns a snapshot of breaker statistics.
func (b *Breaker) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		TotalRequests:   b.metrics.total.Load(),
		SuccessRequests: b.metrics.successes.Load(),
		FailedRequests:  b.metrics.failures.Load(),
		StateChanges:    b.metrics.stateChanges.Load(),
		CurrentState:    b.State().String(),
	}
}

// MetricsSnapshot is a point-in-time capture of breaker statistics.
type MetricsSnapshot struct {
	TotalRequests   int64
	SuccessRequests int64
	FailedRequests  int64
	StateChanges    int32
	CurrentState    string
}
