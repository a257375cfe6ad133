package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/example/modernblog/internal/model"
	"github.com/example/modernblog/internal/state"
	"github.com/example/modernblog/internal/view"
)

// ListProducts returns the shop page: products filtered by the shared
// search query plus the sidebar selections, in the requested sort order.
func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	s := storeFrom(r).GetState()
	q := r.URL.Query()

	filter := view.ProductFilter{
		Query:       s.SearchQuery,
		Category:    q.Get("category"),
		MinPrice:    parseFloat(q.Get("min_price")),
		MaxPrice:    parseFloat(q.Get("max_price")),
		InStockOnly: q.Get("in_stock") == "true",
	}

	products := view.FilterProducts(s.Products, filter)
	products = view.SortProducts(products, view.SortOrder(q.Get("sort")))

	respondJSON(w, http.StatusOK, map[string]any{
		"products":   products,
		"categories": view.ProductCategories(s.Products),
		"total":      len(products),
	})
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s := storeFrom(r).GetState()

	for _, product := range s.Products {
		if product.ID == id {
			respondJSON(w, http.StatusOK, product)
			return
		}
	}
	http.Error(w, "Product not found", http.StatusNotFound)
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
	Featured    bool    `json:"featured"`
}

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	store := storeFrom(r)
	user := store.GetState().User
	if user == nil || !user.IsAdmin {
		http.Error(w, "Admin account required", http.StatusForbidden)
		return
	}

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		http.Error(w, "Price must be non-negative", http.StatusBadRequest)
		return
	}

	product := model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		InStock:     req.InStock,
		Featured:    req.Featured,
	}

	store.Dispatch(state.AddProduct{Product: product})
	respondJSON(w, http.StatusCreated, product)
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if product.Price < 0 {
		http.Error(w, "Price must be non-negative", http.StatusBadRequest)
		return
	}
	product.ID = chi.URLParam(r, "id")

	storeFrom(r).Dispatch(state.UpdateProduct{Product: product})
	respondJSON(w, http.StatusOK, map[string]string{"message": "Product updated"})
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	storeFrom(r).Dispatch(state.DeleteProduct{ID: chi.URLParam(r, "id")})
	respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
