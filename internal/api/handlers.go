// Package api renders the application's pages as a JSON surface. It is a
// pure consumer of the per-session state store: GET endpoints derive
// views from the current snapshot, everything else dispatches actions.
// It enforces nothing; the user record is trusted client state.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/example/modernblog/internal/session"
	"github.com/example/modernblog/internal/state"
	"github.com/example/modernblog/internal/view"
)

type Handlers struct {
	sessions *session.Manager
	tokens   *session.TokenService
	slider   *view.Slider
	logger   zerolog.Logger
}

func NewHandlers(sessions *session.Manager, tokens *session.TokenService, slider *view.Slider, logger zerolog.Logger) *Handlers {
	return &Handlers{
		sessions: sessions,
		tokens:   tokens,
		slider:   slider,
		logger:   logger,
	}
}

// GetHome returns the home page derivation: the hero deck, the three
// newest posts and the first four featured products.
func (h *Handlers) GetHome(w http.ResponseWriter, r *http.Request) {
	s := storeFrom(r).GetState()

	respondJSON(w, http.StatusOK, map[string]any{
		"slides":           h.slider.Slides(),
		"latestPosts":      view.LatestPosts(s.Posts, 3),
		"featuredProducts": view.FeaturedProducts(s.Products, 4),
	})
}

// GetSlides returns the hero deck and the slide currently on display.
func (h *Handlers) GetSlides(w http.ResponseWriter, r *http.Request) {
	_, current := h.slider.Current()
	respondJSON(w, http.StatusOK, map[string]any{
		"slides":  h.slider.Slides(),
		"current": current,
	})
}

// SetSearch replaces the shared search query verbatim.
func (h *Handlers) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	store := storeFrom(r)
	store.Dispatch(state.SetSearchQuery{Query: req.Query})
	respondJSON(w, http.StatusOK, map[string]string{"searchQuery": store.GetState().SearchQuery})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
