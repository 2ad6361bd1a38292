// Package ratelimit provides an opt-in token-bucket limiter for outgoing
// Web API requests.
package ratelimit

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Limiter bounds outgoing request volume to a number of requests per
// period. It is safe for concurrent use.
type Limiter struct {
	limiter  *rate.Limiter
	requests int
	period   time.Duration
	metrics  *metrics
}

type metrics struct {
	total   atomic.Int64
	allowed atomic.Int64
	denied  atomic.Int64
}

// New creates a Limiter allowing the given number of requests per period,
// with a burst equal to the request count.
func New(requests int, period time.Duration) *Limiter {
	rps := float64(requests) / period.Seconds()
	return &Limiter{
		limiter:  rate.NewLimiter(rate.Limit(rps), requests),
		requests: requests,
		period:   period,
		metrics:  &metrics{},
	}
}

// Wait blocks until the limiter allows a request or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	l.metrics.total.Add(1)
	if err := l.limiter.Wait(ctx); err != nil {
		l.metrics.denied.Add(1)
		return err
	}
	l.metrics.allowed.Add(1)
	return nil
}

// Allow returns true if a request is permitted immediately.
func (l *Limiter) Allow() bool {
	l.metrics.total.Add(1)
	allowed := l.limiter.Allow()
	if allowed {
		l.metrics.allowed.Add(1)
	} else {
		l.metrics.denied.Add(1)
	}
	return allowed
}

// SetLimit updates the rate to the given requests per period.
func (l *Limiter) SetLimit(requests int, period time.Duration) {
	l.requests = requests
	l.period = period
	l.limiter.SetLimit(rate.Limit(float64(requests) / period.Seconds()))
}

// Metrics returns a snapshot of limiter statistics.
func (l *Limiter) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		TotalRequests:   l.metrics.total.Load(),
		AllowedRequests: l.metrics.allowed.Load(),
		DeniedRequests:  l.metrics.denied.Load(),
	}
}

// MetricsSnapshot is a point-in-time capture of limiter statistics.
type MetricsSnapshot struct {
	// TotalRequests is the total number of rate limit checks performed.
	TotalRequests int64
	// AllowedRequests is the number of requests that were allowed.
	AllowedRequests int64
	// DeniedRequests is the number of requests that were denied.
	DeniedRequests int64
}
