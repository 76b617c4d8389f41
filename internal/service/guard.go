package service

import (
	"fmt"
	"sync"
)

// runGuard enforces at most one in-flight sync run per (target, kind).
// A second request for a held key is rejected, never queued, so overlapping
// runs can't race on the same remote-id keys.
type runGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newRunGuard() *runGuard {
	return &runGuard{active: make(map[string]struct{})}
}

func guardKey(target string, kind SyncKind) string {
	return fmt.Sprintf("%s:%s", target, kind)
}

// tryAcquire claims a key; it returns false if a run already holds it
func (g *runGuard) tryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, held := g.active[key]; held {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

// release frees a key claimed by tryAcquire
func (g *runGuard) release(key string) {
	g.mu.Lock()
	delete(g.active, key)
	g.mu.Unlock()
}
