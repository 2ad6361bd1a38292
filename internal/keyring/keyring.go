// Package keyring manages a ring of Web API credential triples so a client
// can rotate among several issued keys.
package keyring

import (
	"fmt"
	"sync"
	"time"

	"ttwebclient/pkg/core"
)

// RotationStrategy selects when the ring advances to the next entry.
type RotationStrategy int

const (
	// RotationRoundRobin rotates on every use.
	RotationRoundRobin RotationStrategy = iota
	// RotationOnError rotates when the current entry records an error.
	RotationOnError
	// RotationManual only rotates when Rotate is called.
	RotationManual
)

// Entry is one credential triple held by the ring.
type Entry struct {
	Credentials core.Credentials
	Disabled    bool
	LastUsed    time.Time
	ErrorCount  int
}

// Ring holds credential triples and hands out the current one. It is safe
// for concurrent use.
type Ring struct {
	mu       sync.RWMutex
	entries  []*Entry
	current  int
	strategy RotationStrategy
}

// New creates a Ring over the given credential triples. Incomplete triples
// are kept but never handed out as usable entries; Current skips disabled
// entries only.
func New(creds []core.Credentials, strategy RotationStrategy) *Ring {
	entries := make([]*Entry, 0, len(creds))
	for _, c := range creds {
		entries = append(entries, &Entry{Credentials: c})
	}
	return &Ring{
		entries:  entries,
		strategy: strategy,
	}
}

// Current returns the active credential triple, skipping disabled entries.
// It returns ErrNoCredentials when the ring is empty or fully disabled.
func (r *Ring) Current() (core.Credentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := 0; i < len(r.entries); i++ {
		idx := (r.current + i) % len(r.entries)
		if !r.entries[idx].Disabled {
			return r.entries[idx].Credentials, nil
		}
	}
	return core.Credentials{}, core.ErrNoCredentials
}

// Rotate advances to the next enabled entry.
func (r *Ring) Rotate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rotateLocked()
}

func (r *Ring) rotateLocked() {
	if len(r.entries) == 0 {
		return
	}
	start := r.current
	for {
		r.current = (r.current + 1) % len(r.entries)
		if !r.entries[r.current].Disabled || r.current == start {
			return
		}
	}
}

// MarkUsed stamps the current entry and, under round-robin rotation,
// advances the ring.
func (r *Ring) MarkUsed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return
	}
	r.entries[r.current].LastUsed = time.Now()
	if r.strategy == RotationRoundRobin {
		r.rotateLocked()
	}
}

// OnError records a failure against the current entry and rotates when the
// strategy demands it.
func (r *Ring) OnError() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return
	}
	r.entries[r.current].ErrorCount++
	if r.strategy == RotationOnError {
		r.rotateLocked()
	}
}

// Disable removes an entry from rotation by its credential id.
func (r *Ring) Disable(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.Credentials.ID == id {
			e.Disabled = true
			return
		}
	}
}

// Enable returns a disabled entry to rotation and clears its error count.
func (r *Ring) Enable(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.Credentials.ID == id {
			e.Disabled = false
			e.ErrorCount = 0
			return
		}
	}
}

// Add appends a credential triple unless its id is already present.
func (r *Ring) Add(creds core.Credentials) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.Credentials.ID == creds.ID {
			return
		}
	}
	r.entries = append(r.entries, &Entry{Credentials: creds})
}

// Remove deletes an entry by its credential id.
func (r *Ring) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.Credentials.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			if r.current >= len(r.entries) {
				r.current = 0
			}
			return
		}
	}
}

// Len returns the number of entries in the ring.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// String returns a masked representation safe for logging.
func (e *Entry) String() string {
	return fmt.Sprintf("Entry{%s, errors:%d}", e.Credentials, e.ErrorCount)
}
