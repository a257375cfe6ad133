package state

import (
	"sync"

	"github.com/rs/zerolog"
)

// Observer receives each new snapshot after a successful transition.
// Observers must not call Dispatch from inside the callback; dispatches
// are serialized and a re-entrant one would deadlock.
type Observer func(State)

type subscriber struct {
	id int
	fn Observer
}

// Store owns the single mutable-by-replacement application state. All
// writes go through Dispatch, which serializes transitions so that one
// completes (including observer notification) before the next begins.
type Store struct {
	dispatchMu sync.Mutex // serializes whole transitions

	mu     sync.RWMutex // guards state and subscribers
	state  State
	subs   []subscriber // notification order is registration order
	nextID int

	logger zerolog.Logger
}

// New creates a store holding the given initial snapshot.
func New(initial State) *Store {
	return &Store{state: initial, logger: zerolog.Nop()}
}

// SetLogger enables action-level debug logging.
func (st *Store) SetLogger(logger zerolog.Logger) {
	st.logger = logger
}

// GetState returns the current snapshot. The returned value shares its
// collections with the store's snapshot; callers must treat it as
// immutable.
func (st *Store) GetState() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

// Dispatch applies the transition function and, if the action was
// recognized, installs the new snapshot and notifies observers in
// registration order. Unrecognized or nil actions leave the state
// untouched and notify no one. Dispatch never fails.
func (st *Store) Dispatch(action Action) {
	st.dispatchMu.Lock()
	defer st.dispatchMu.Unlock()

	st.mu.Lock()
	next, ok := Reduce(st.state, action)
	if !ok {
		st.mu.Unlock()
		st.logger.Debug().Type("action", action).Msg("ignoring unrecognized action")
		return
	}
	st.state = next
	subs := make([]subscriber, len(st.subs))
	copy(subs, st.subs)
	st.mu.Unlock()

	st.logger.Debug().Type("action", action).Msg("state transition")

	for _, sub := range subs {
		// An observer may have been unsubscribed by an earlier observer
		// in this same notification round; skip it, never the rest.
		if st.subscribed(sub.id) {
			sub.fn(next)
		}
	}
}

// Subscribe registers an observer and returns a function that removes it.
// The unsubscribe function is idempotent and safe to call from inside a
// notification.
func (st *Store) Subscribe(fn Observer) func() {
	st.mu.Lock()
	st.nextID++
	id := st.nextID
	st.subs = append(st.subs, subscriber{id: id, fn: fn})
	st.mu.Unlock()

	return func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		for i, sub := range st.subs {
			if sub.id == id {
				st.subs = append(st.subs[:i:i], st.subs[i+1:]...)
				return
			}
		}
	}
}

func (st *Store) subscribed(id int) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, sub := range st.subs {
		if sub.id == id {
			return true
		}
	}
	return false
}
