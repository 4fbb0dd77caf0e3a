package core

// probe_limiter.go bounds the number of URL probes in flight.
//
// The limiter is a counting semaphore: Acquire blocks until a slot frees up
// or the context ends, so a large dataset never opens more than
// MaxConcurrent connections at once.

import (
	"context"
	"sync"
)

// DefaultMaxConcurrentProbes is the default limit for parallel probes.
const DefaultMaxConcurrentProbes = 8

// ProbeLimiter controls concurrent probing using a semaphore pattern.
type ProbeLimiter struct {
	semaphore chan struct{}

	mu     sync.RWMutex
	active int
}

// NewProbeLimiter creates a limiter that allows at most maxConcurrent probes.
func NewProbeLimiter(maxConcurrent int) *ProbeLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentProbes
	}
	return &ProbeLimiter{
		semaphore: make(chan struct{}, maxConcurrent),
	}
}

// Acquire blocks until a slot is free or ctx is done.
// The caller MUST call Release() after a successful Acquire (use defer).
func (l *ProbeLimiter) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil

	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release releases a previously acquired slot.
func (l *ProbeLimiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()

	<-l.semaphore
}

// ActiveCount returns the number of probes currently holding a slot.
func (l *ProbeLimiter) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// MaxConcurrent returns the maximum allowed concurrent probes.
func (l *ProbeLimiter) MaxConcurrent() int {
	return cap(l.semaphore)
}
