// Package session maps session ids to per-conversation dispatchers. The
// store is a fixed-size LRU: the least recently used conversation is evicted
// once the cap is reached, which bounds memory for long-running deployments.
package session

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"rahalah/internal/dispatcher"
	pkgLog "rahalah/pkg/log"
)

// Factory builds a fresh dispatcher for a new conversation.
type Factory func() *dispatcher.Dispatcher

// Manager hands out dispatchers keyed by session id.
type Manager struct {
	l       pkgLog.Logger
	cache   *lru.Cache[string, *dispatcher.Dispatcher]
	factory Factory
}

// NewManager creates a session manager holding at most size conversations.
func NewManager(l pkgLog.Logger, size int, factory Factory) (*Manager, error) {
	cache, err := lru.New[string, *dispatcher.Dispatcher](size)
	if err != nil {
		return nil, err
	}
	return &Manager{l: l, cache: cache, factory: factory}, nil
}

// Resolve returns the dispatcher for the given session id, creating a new
// conversation when the id is empty or unknown. The returned id is the one
// the caller should echo back on subsequent turns.
func (m *Manager) Resolve(sessionID string) (string, *dispatcher.Dispatcher) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if d, ok := m.cache.Get(sessionID); ok {
		return sessionID, d
	}

	d := m.factory()
	m.cache.Add(sessionID, d)
	return sessionID, d
}

// Lookup returns the dispatcher for an existing session, without creating one.
func (m *Manager) Lookup(sessionID string) (*dispatcher.Dispatcher, bool) {
	return m.cache.Get(sessionID)
}

// Len reports how many conversations are currently held.
func (m *Manager) Len() int {
	return m.cache.Len()
}
