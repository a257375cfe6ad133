package state

import "github.com/example/modernblog/internal/model"

// State is one immutable snapshot of the whole application. The store
// replaces it wholesale on every transition; holders of a snapshot must
// never mutate it or anything it references.
type State struct {
	Posts       []model.Post     `json:"posts"`
	Products    []model.Product  `json:"products"`
	Cart        []model.CartItem `json:"cart"`
	User        *model.User      `json:"user"` // nil means logged out
	SearchQuery string           `json:"searchQuery"`
}
