package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/example/modernblog/internal/model"
	"github.com/example/modernblog/internal/state"
	"github.com/example/modernblog/internal/view"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// stateMessage is the per-transition summary pushed to connected clients.
// It carries what the header renders: the cart badge, totals and the
// current user.
type stateMessage struct {
	CartCount    int         `json:"cartCount"`
	CartTotal    float64     `json:"cartTotal"`
	PostCount    int         `json:"postCount"`
	ProductCount int         `json:"productCount"`
	SearchQuery  string      `json:"searchQuery"`
	User         *model.User `json:"user"`
}

func summarize(s state.State) stateMessage {
	summary := view.Summarize(s.Cart)
	return stateMessage{
		CartCount:    summary.ItemCount,
		CartTotal:    summary.Total,
		PostCount:    len(s.Posts),
		ProductCount: len(s.Products),
		SearchQuery:  s.SearchQuery,
		User:         s.User,
	}
}

// StreamState upgrades to a WebSocket and pushes one summary message per
// store transition, starting with the current snapshot. This is the
// observer contract carried over the wire to the browser.
func (h *Handlers) StreamState(w http.ResponseWriter, r *http.Request) {
	store := storeFrom(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// The observer runs inside Dispatch and must never block on the
	// socket; updates funnel through a buffered channel and a stale one
	// may be dropped, the next transition supersedes it anyway.
	updates := make(chan state.State, 8)
	unsubscribe := store.Subscribe(func(s state.State) {
		select {
		case updates <- s:
		default:
		}
	})
	defer unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(summarize(store.GetState())); err != nil {
		return
	}

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case s := <-updates:
			if err := conn.WriteJSON(summarize(s)); err != nil {
				return
			}
		}
	}
}
