package view

import "github.com/example/modernblog/internal/model"

// Orders over 50 ship free, everything else pays a flat rate.
const (
	FreeShippingThreshold = 50.0
	FlatShippingRate      = 10.0
)

// CartSummary is the order summary derived from the cart on every render.
type CartSummary struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
}

// Summarize computes the cart badge count and order totals.
func Summarize(cart []model.CartItem) CartSummary {
	var summary CartSummary
	for _, item := range cart {
		summary.ItemCount += item.Quantity
		summary.Subtotal += item.Price * float64(item.Quantity)
	}
	if summary.Subtotal > FreeShippingThreshold {
		summary.Shipping = 0
	} else {
		summary.Shipping = FlatShippingRate
	}
	summary.Total = summary.Subtotal + summary.Shipping
	return summary
}
