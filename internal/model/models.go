package model

// Author is a writer profile. It is embedded by value inside each Post at
// creation time; editing an author's profile later never rewrites the
// snapshot stored on historical posts.
type Author struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Avatar string            `json:"avatar"`
	Bio    string            `json:"bio"`
	Social map[string]string `json:"social"` // platform -> profile URL
}

// Post is a blog article. IDs are unique within the posts collection.
type Post struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Author    Author   `json:"author"`
	Image     string   `json:"image"`
	Tags      []string `json:"tags"` // ordered, duplicates permitted
	Category  string   `json:"category"`
	CreatedAt string   `json:"createdAt"`
}

// Product is a catalogue entry. IDs are unique within the products
// collection and Price is never negative.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
	Featured    bool    `json:"featured"`
}

// CartItem is a product plus the quantity selected. The cart holds at most
// one item per product ID; quantities accumulate instead of duplicating
// entries.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// User is the current visitor. The admin and premium flags are trusted
// client state, there is no enforcement behind them.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	IsPremium bool   `json:"isPremium"`
}
