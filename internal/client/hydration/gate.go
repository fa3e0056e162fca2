// Package hydration tracks the one-way transition from "persisted auth state
// not yet loaded" to "loaded". Consumers that must not act on unknown auth
// state (route guards, the CLI) block or subscribe on the gate instead of
// reading half-initialized state.
package hydration

import "sync"

// Gate starts unresolved and resolves exactly once. Subscribers registered
// before resolution are notified once when it happens; subscribers registered
// after resolution are notified immediately.
type Gate struct {
	mu          sync.Mutex
	resolved    bool
	subscribers []func()
	done        chan struct{}
}

// NewGate returns an unresolved Gate.
func NewGate() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Resolved reports whether the gate has resolved.
func (g *Gate) Resolved() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resolved
}

// Resolve marks the gate resolved and notifies subscribers. Calls after the
// first are no-ops: the transition happens at most once.
func (g *Gate) Resolve() {
	g.mu.Lock()
	if g.resolved {
		g.mu.Unlock()
		return
	}
	g.resolved = true
	subs := g.subscribers
	g.subscribers = nil
	close(g.done)
	g.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may query the gate.
	for _, fn := range subs {
		fn()
	}
}

// Subscribe registers fn to run once the gate resolves. If the gate has
// already resolved, fn runs synchronously before Subscribe returns.
func (g *Gate) Subscribe(fn func()) {
	g.mu.Lock()
	if g.resolved {
		g.mu.Unlock()
		fn()
		return
	}
	g.subscribers = append(g.subscribers, fn)
	g.mu.Unlock()
}

// Done returns a channel that is closed when the gate resolves.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}
