// Package relay is the staging area that hands a scan result from the
// capture flow to the results flow. Navigation parameters are unreliable for
// large payloads, so the producing screen writes here right before it
// requests navigation and the consuming screen takes the entry on mount.
package relay

import (
	"log/slog"
	"sync"
)

// ResultKey is the well-known key the scan flow stages its payload under.
const ResultKey = "scanResults"

// Store is a process-scoped key/value relay. Each key holds at most one
// pending payload: a second Put overwrites, it does not enqueue. Reading and
// clearing are a single take operation so a stale entry is never delivered
// twice. Every Put also fills a secondary slot; if the primary entry is
// dropped by framework lifecycle before the consumer mounts, the take
// recovers from the fallback once.
type Store struct {
	mu       sync.Mutex
	entries  map[string]any
	fallback map[string]any
}

// New returns an empty relay store. Stores are meant to be owned by whatever
// controls navigation, not held as package globals, so tests can substitute
// their own.
func New() *Store {
	return &Store{
		entries:  make(map[string]any),
		fallback: make(map[string]any),
	}
}

// Put stages value under key, replacing any pending entry. Last write wins.
func (s *Store) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	s.fallback[key] = value
	slog.Debug("Parameter stored", "key", key)
}

// TakeAndClear removes and returns the pending entry for key. The primary
// slot is preferred; if it is gone the fallback is consumed instead. After a
// take both slots are empty, so a second immediate take reports absent.
func (s *Store) TakeAndClear(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value, ok := s.entries[key]; ok {
		delete(s.entries, key)
		delete(s.fallback, key)
		slog.Debug("Parameter retrieved", "key", key)
		return value, true
	}

	if value, ok := s.fallback[key]; ok {
		delete(s.fallback, key)
		slog.Debug("Parameter recovered from fallback", "key", key)
		return value, true
	}

	return nil, false
}

// Drop discards the pending entry for key, if any, without delivering it.
func (s *Store) Drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	delete(s.fallback, key)
	slog.Debug("Parameter cleared", "key", key)
}

// Reset empties the primary slots, leaving fallbacks intact. This models the
// screen-lifecycle teardown that wipes the primary store before the consumer
// mounts; a pending payload survives it exactly once via the fallback.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]any)
	slog.Debug("All parameters cleared")
}
