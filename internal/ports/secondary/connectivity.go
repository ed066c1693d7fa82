package secondary

import "context"

// ConnectivityMonitor defines the secondary port for connectivity awareness.
type ConnectivityMonitor interface {
	// Online reports whether the backend is currently reachable. The answer
	// is best-effort and may be stale by the time a request is attempted;
	// callers re-query at decision points rather than caching.
	Online(ctx context.Context) bool

	// Subscribe registers a handler invoked on every connectivity
	// transition. The returned function removes the subscription.
	Subscribe(fn func(online bool)) (unsubscribe func())
}
