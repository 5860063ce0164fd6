package store

import "ethnicshop.GO/catalog"

// CartItem is one cart line: a product snapshot plus quantity and the size
// the shopper picked. Lines never persist with quantity 0.
//
// Line identity on display is (product id, selected size), but AddToCart
// merges by product id alone: two sizes of one product collapse into a
// single line, keeping the size picked first. See DESIGN.md.
type CartItem struct {
	catalog.Product `mapstructure:",squash"`
	Quantity        int    `json:"quantity"`
	SelectedSize    string `json:"selectedSize,omitempty"`
}

// Review is one customer review. ID and Date are assigned when the review is
// accepted and never change afterwards.
type Review struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Title   string `json:"title,omitempty"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Order is an immutable record of one completed checkout.
type Order struct {
	ID            int64      `json:"id"`
	Items         []CartItem `json:"items"`
	Total         int        `json:"total"`
	Status        string     `json:"status"`
	Date          string     `json:"date"`
	Address       string     `json:"address"`
	PaymentMethod string     `json:"paymentMethod"`
}

// User is the optional shopper identity for the session.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// State is the root shopper-session state. There is exactly one instance per
// session, owned by a Store; it is only ever changed through the action
// vocabulary in action.go.
type State struct {
	Cart        []CartItem
	Wishlist    []catalog.Product
	Reviews     map[int][]Review
	Orders      []Order
	User        *User
	SearchQuery string
	Filters     catalog.FilterState
}

// NewState returns the initial empty session state.
func NewState() State {
	return State{
		Cart:     []CartItem{},
		Wishlist: []catalog.Product{},
		Reviews:  map[int][]Review{},
		Orders:   []Order{},
		Filters:  catalog.DefaultSessionFilters(),
	}
}
