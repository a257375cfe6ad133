package view

import (
	"sort"
	"strings"

	"github.com/example/modernblog/internal/model"
)

// SortOrder selects how the shop page orders products.
type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortName      SortOrder = "name"
)

// ProductFilter selects catalogue products. Zero values select everything;
// MaxPrice <= 0 means no upper price bound.
type ProductFilter struct {
	Query       string
	Category    string
	MinPrice    float64
	MaxPrice    float64
	InStockOnly bool
}

// FilterProducts returns the products matching the filter, keeping their
// order. A product matches when the query is a case-insensitive substring
// of its name or description, its category equals the selected one, its
// price falls in the inclusive [MinPrice, MaxPrice] range, and it is in
// stock if the in-stock-only toggle is on.
func FilterProducts(products []model.Product, f ProductFilter) []model.Product {
	query := strings.ToLower(f.Query)

	matched := make([]model.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// SortProducts returns a sorted copy; the input is left untouched.
// The featured ordering is a stable partition: featured products first,
// ties broken by the incoming order.
func SortProducts(products []model.Product, order SortOrder) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	switch order {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Featured && !sorted[j].Featured
		})
	}
	return sorted
}

// ProductCategories returns the distinct product categories in first-seen
// order.
func ProductCategories(products []model.Product) []string {
	return distinct(products, func(p model.Product) []string { return []string{p.Category} })
}

// FeaturedProducts returns up to n featured products in catalogue order.
func FeaturedProducts(products []model.Product, n int) []model.Product {
	out := make([]model.Product, 0, n)
	for _, p := range products {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// LatestPosts returns up to n posts from the front of the collection
// (new posts are prepended, so the front is the newest).
func LatestPosts(posts []model.Post, n int) []model.Post {
	if len(posts) < n {
		n = len(posts)
	}
	return posts[:n]
}
