package state

import "github.com/example/modernblog/internal/model"

// Reduce is the pure transition function: it maps (snapshot, action) to the
// next snapshot without touching either input. The boolean reports whether
// the action was recognized; a recognized action always yields a fresh
// snapshot, even when it matched nothing (a missing ID degrades to a no-op
// rather than an error). A nil or unrecognized action returns the snapshot
// unchanged.
func Reduce(s State, action Action) (State, bool) {
	switch a := action.(type) {
	case SetPosts:
		s.Posts = a.Posts
		return s, true

	case AddPost:
		s.Posts = prepend(s.Posts, a.Post)
		return s, true

	case UpdatePost:
		s.Posts = replaceByID(s.Posts, a.Post, func(p model.Post) string { return p.ID })
		return s, true

	case DeletePost:
		s.Posts = removeByID(s.Posts, a.ID, func(p model.Post) string { return p.ID })
		return s, true

	case SetProducts:
		s.Products = a.Products
		return s, true

	case AddProduct:
		s.Products = prepend(s.Products, a.Product)
		return s, true

	case UpdateProduct:
		s.Products = replaceByID(s.Products, a.Product, func(p model.Product) string { return p.ID })
		return s, true

	case DeleteProduct:
		s.Products = removeByID(s.Products, a.ID, func(p model.Product) string { return p.ID })
		return s, true

	case AddToCart:
		s.Cart = addToCart(s.Cart, a.Product)
		return s, true

	case RemoveFromCart:
		s.Cart = removeByID(s.Cart, a.ID, func(i model.CartItem) string { return i.ID })
		return s, true

	case UpdateQuantity:
		s.Cart = setQuantity(s.Cart, a.ID, a.Quantity)
		return s, true

	case SetUser:
		if a.User != nil {
			u := *a.User
			s.User = &u
		} else {
			s.User = nil
		}
		return s, true

	case SetSearchQuery:
		s.SearchQuery = a.Query
		return s, true

	default:
		return s, false
	}
}

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

func replaceByID[T any](items []T, item T, id func(T) string) []T {
	out := make([]T, len(items))
	target := id(item)
	for i, existing := range items {
		if id(existing) == target {
			out[i] = item
		} else {
			out[i] = existing
		}
	}
	return out
}

func removeByID[T any](items []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, existing := range items {
		if id(existing) != target {
			out = append(out, existing)
		}
	}
	return out
}

// addToCart accumulates quantity when the product is already in the cart,
// otherwise appends a new item with quantity 1.
func addToCart(cart []model.CartItem, p model.Product) []model.CartItem {
	for i, item := range cart {
		if item.ID == p.ID {
			out := make([]model.CartItem, len(cart))
			copy(out, cart)
			out[i].Quantity++
			return out
		}
	}
	out := make([]model.CartItem, 0, len(cart)+1)
	out = append(out, cart...)
	return append(out, model.CartItem{Product: p, Quantity: 1})
}

// setQuantity clamps to a minimum of 1; quantities below that are never
// stored and never remove the item.
func setQuantity(cart []model.CartItem, id string, quantity int) []model.CartItem {
	out := make([]model.CartItem, len(cart))
	copy(out, cart)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity = max(1, quantity)
		}
	}
	return out
}
