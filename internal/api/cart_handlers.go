package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/modernblog/internal/state"
	"github.com/example/modernblog/internal/view"
)

// GetCart returns the cart page: the items plus the derived order summary.
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	s := storeFrom(r).GetState()

	respondJSON(w, http.StatusOK, map[string]any{
		"items":   s.Cart,
		"summary": view.Summarize(s.Cart),
	})
}

// AddCartItem puts one unit of a product in the cart. Adding a product
// already in the cart bumps its quantity instead of duplicating the line.
func (h *Handlers) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	store := storeFrom(r)
	s := store.GetState()
	for _, product := range s.Products {
		if product.ID == req.ProductID {
			store.Dispatch(state.AddToCart{Product: product})
			respondJSON(w, http.StatusOK, map[string]any{
				"summary": view.Summarize(store.GetState().Cart),
			})
			return
		}
	}
	http.Error(w, "Product not found", http.StatusNotFound)
}

// UpdateCartItem sets a line's quantity. The store clamps it to at least 1.
func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	store := storeFrom(r)
	store.Dispatch(state.UpdateQuantity{ID: chi.URLParam(r, "id"), Quantity: req.Quantity})
	respondJSON(w, http.StatusOK, map[string]any{
		"summary": view.Summarize(store.GetState().Cart),
	})
}

func (h *Handlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	store := storeFrom(r)
	store.Dispatch(state.RemoveFromCart{ID: chi.URLParam(r, "id")})
	respondJSON(w, http.StatusOK, map[string]any{
		"summary": view.Summarize(store.GetState().Cart),
	})
}
