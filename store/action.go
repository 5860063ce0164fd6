package store

import "ethnicshop.GO/catalog"

// Action is one member of the closed mutation vocabulary. Every variant is
// total: reducing it can never fail, only leave the state unchanged.
type Action interface {
	kind() string
}

// AddToCart appends a new line with quantity 1, or increments the existing
// line when a line with the same product id is already present.
type AddToCart struct {
	Product      catalog.Product
	SelectedSize string
}

// RemoveFromCart deletes every line matching the product id.
type RemoveFromCart struct {
	ProductID int
}

// SetCartQuantity clamps the requested quantity to >= 0 and applies it;
// lines reaching 0 are dropped.
type SetCartQuantity struct {
	ProductID int
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// AddToWishlist appends the product if absent; adding a present id is a no-op.
type AddToWishlist struct {
	Product catalog.Product
}

// RemoveFromWishlist deletes matching entries.
type RemoveFromWishlist struct {
	ProductID int
}

// AddReview appends a fully-formed review (id and date already assigned) to
// the product's review sequence, creating the sequence if absent.
type AddReview struct {
	ProductID int
	Review    Review
}

// SetSearchQuery replaces the search query verbatim.
type SetSearchQuery struct {
	Query string
}

// SetFilters shallow-merges the patch into the active filter state.
type SetFilters struct {
	Filters catalog.FilterState
}

// AddOrder appends an order to the order history.
type AddOrder struct {
	Order Order
}

// SetUser replaces the session identity (nil clears it).
type SetUser struct {
	User *User
}

func (AddToCart) kind() string          { return "add_to_cart" }
func (RemoveFromCart) kind() string     { return "remove_from_cart" }
func (SetCartQuantity) kind() string    { return "set_cart_quantity" }
func (ClearCart) kind() string          { return "clear_cart" }
func (AddToWishlist) kind() string      { return "add_to_wishlist" }
func (RemoveFromWishlist) kind() string { return "remove_from_wishlist" }
func (AddReview) kind() string          { return "add_review" }
func (SetSearchQuery) kind() string     { return "set_search_query" }
func (SetFilters) kind() string         { return "set_filters" }
func (AddOrder) kind() string           { return "add_order" }
func (SetUser) kind() string            { return "set_user" }
