package state

import "github.com/example/modernblog/internal/model"

// Action is a tagged value describing one requested state transition.
// The set of actions is closed: only types in this package implement it,
// so the transition function can match exhaustively.
type Action interface {
	isAction()
}

// Post actions

type SetPosts struct {
	Posts []model.Post
}

type AddPost struct {
	Post model.Post
}

type UpdatePost struct {
	Post model.Post
}

type DeletePost struct {
	ID string
}

// Product actions

type SetProducts struct {
	Products []model.Product
}

type AddProduct struct {
	Product model.Product
}

type UpdateProduct struct {
	Product model.Product
}

type DeleteProduct struct {
	ID string
}

// Cart actions

type AddToCart struct {
	Product model.Product
}

type RemoveFromCart struct {
	ID string
}

type UpdateQuantity struct {
	ID       string
	Quantity int
}

// Session actions

type SetUser struct {
	User *model.User // nil logs out
}

type SetSearchQuery struct {
	Query string
}

func (SetPosts) isAction()       {}
func (AddPost) isAction()        {}
func (UpdatePost) isAction()     {}
func (DeletePost) isAction()     {}
func (SetProducts) isAction()    {}
func (AddProduct) isAction()     {}
func (UpdateProduct) isAction()  {}
func (DeleteProduct) isAction()  {}
func (AddToCart) isAction()      {}
func (RemoveFromCart) isAction() {}
func (UpdateQuantity) isAction() {}
func (SetUser) isAction()        {}
func (SetSearchQuery) isAction() {}
