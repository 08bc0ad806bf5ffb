// Package poller implements the per-resource refresh state machine:
// Idle → Loading → (Success | Failure), re-entered on start, on an explicit
// refresh and on a fixed interval tick.
package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Poller refetches a snapshot on a fixed cadence. Every fetch is stamped with
// a monotonically increasing sequence number; a completion older than the
// newest initiated fetch is discarded, so the last-initiated request always
// wins regardless of response ordering. A failed fetch leaves the previous
// snapshot in place.
type Poller[T any] struct {
	name     string
	fetch    FetchFunc[T]
	interval time.Duration
	onUpdate func(T)

	seq atomic.Int64

	mu          sync.Mutex
	state       State
	snapshot    T
	hasSnapshot bool
	lastError   string
	appliedSeq  int64
}

// New creates a poller. onUpdate may be nil; when set it is invoked with each
// successfully applied snapshot, outside the poller's lock.
func New[T any](name string, fetch FetchFunc[T], interval time.Duration, onUpdate func(T)) *Poller[T] {
	return &Poller[T]{
		name:     name,
		fetch:    fetch,
		interval: interval,
		onUpdate: onUpdate,
		state:    StateIdle,
	}
}

// Run performs an immediate refresh, then refreshes on the configured
// interval until the context is canceled.
func (p *Poller[T]) Run(ctx context.Context) {
	zap.L().Info("Starting poller",
		zap.String("resource", p.name),
		zap.Duration("interval", p.interval))

	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Poller shutting down", zap.String("resource", p.name))
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh performs one fetch cycle. Safe to call concurrently with Run; the
// sequence stamp resolves races between overlapping fetches.
func (p *Poller[T]) Refresh(ctx context.Context) {
	id := p.seq.Add(1)

	p.mu.Lock()
	p.state = StateLoading
	p.mu.Unlock()

	snapshot, err := p.fetch(ctx)

	applied := p.apply(id, snapshot, err)
	if applied && err == nil && p.onUpdate != nil {
		p.onUpdate(snapshot)
	}
}

func (p *Poller[T]) apply(id int64, snapshot T, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A newer fetch has been initiated; this response is stale.
	if id < p.seq.Load() || id <= p.appliedSeq {
		zap.L().Debug("Discarding stale fetch result",
			zap.String("resource", p.name),
			zap.Int64("seq", id))
		return false
	}
	p.appliedSeq = id

	if err != nil {
		p.state = StateFailure
		p.lastError = err.Error()
		zap.L().Warn("Refresh failed",
			zap.String("resource", p.name),
			zap.Error(err))
		return true
	}

	p.state = StateSuccess
	p.snapshot = snapshot
	p.hasSnapshot = true
	p.lastError = ""
	return true
}

// Snapshot returns the last successfully fetched value, if any.
func (p *Poller[T]) Snapshot() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot, p.hasSnapshot
}

func (p *Poller[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller[T]) LastError() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastError
}
