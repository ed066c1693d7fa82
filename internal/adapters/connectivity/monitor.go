// Package connectivity provides backend reachability probing and
// transition notifications, the client-side stand-in for platform
// online/offline events.
package connectivity

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/example/fieldreport/internal/ports/secondary"
)

// Monitor implements secondary.ConnectivityMonitor by probing the backend
// health endpoint. Online answers with a fresh probe; Start runs a poll loop
// that notifies subscribers on every transition.
type Monitor struct {
	probeURL string
	interval time.Duration
	httpc    *http.Client

	mu     sync.Mutex
	subs   map[int]func(online bool)
	nextID int
	online bool
	primed bool
}

// NewMonitor creates a monitor probing the given URL at the given interval.
// A probe that takes longer than timeout counts as offline.
func NewMonitor(probeURL string, interval, timeout time.Duration) *Monitor {
	return &Monitor{
		probeURL: probeURL,
		interval: interval,
		httpc:    &http.Client{Timeout: timeout},
		subs:     make(map[int]func(online bool)),
	}
}

// Online reports whether the backend responds right now. Best-effort: the
// answer can be stale by the time the caller issues its request.
func (m *Monitor) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.probeURL, nil)
	if err != nil {
		return false
	}

	resp, err := m.httpc.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return resp.StatusCode < http.StatusInternalServerError
}

// Subscribe registers a handler for connectivity transitions. The returned
// function removes the subscription.
func (m *Monitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// Start runs the poll loop until ctx is cancelled. The first probe primes
// the state without notifying; after that, subscribers hear about every
// transition exactly once.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		m.observe(m.Online(ctx))

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.observe(m.Online(ctx))
			}
		}
	}()
}

// observe records a probe result and notifies subscribers on transitions.
func (m *Monitor) observe(online bool) {
	m.mu.Lock()
	changed := m.primed && online != m.online
	m.primed = true
	m.online = online

	var handlers []func(bool)
	if changed {
		handlers = make([]func(bool), 0, len(m.subs))
		for _, fn := range m.subs {
			handlers = append(handlers, fn)
		}
	}
	m.mu.Unlock()

	// Handlers run outside the lock; a handler may subscribe or unsubscribe.
	for _, fn := range handlers {
		fn(online)
	}
}

// Ensure Monitor implements the interface
var _ secondary.ConnectivityMonitor = (*Monitor)(nil)
