// Package session keys an independent application store to each browser
// session. Stores live in memory only and are dropped when idle; nothing
// survives a restart.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/modernblog/internal/state"
)

type entry struct {
	store    *state.Store
	lastSeen time.Time
}

// Manager hands out per-session stores. Each session gets its own copy of
// the application state; there is no cross-session consistency.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry

	newStore func() *state.Store
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewManager creates a manager that builds fresh stores with newStore and
// evicts sessions idle for longer than ttl.
func NewManager(newStore func() *state.Store, ttl time.Duration, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		newStore: newStore,
		ttl:      ttl,
		logger:   logger,
	}
}

// Get returns the store for a session ID, refreshing its idle timer.
func (m *Manager) Get(id string) (*state.Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.store, true
}

// Create bootstraps a new session and returns its ID and store.
func (m *Manager) Create() (string, *state.Store) {
	id := uuid.NewString()
	store := m.newStore()

	m.mu.Lock()
	m.sessions[id] = &entry{store: store, lastSeen: time.Now()}
	m.mu.Unlock()

	m.logger.Debug().Str("session", id).Msg("session created")
	return id, store
}

// GetOrCreate resolves an existing session or starts a fresh one when the
// ID is empty or unknown (e.g. after an eviction or restart).
func (m *Manager) GetOrCreate(id string) (string, *state.Store) {
	if id != "" {
		if store, ok := m.Get(id); ok {
			return id, store
		}
	}
	return m.Create()
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts idle sessions on an interval until the context is
// canceled. It blocks; run it in its own goroutine.
func (m *Manager) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.evictIdle(time.Now())
		}
	}
}

func (m *Manager) evictIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.ttl {
			delete(m.sessions, id)
			m.logger.Debug().Str("session", id).Msg("idle session evicted")
		}
	}
}
