package store

import "ethnicshop.GO/catalog"

// reduce applies one action to the state and returns the next state. It is
// pure: input slices are never mutated, changed collections are rebuilt.
func reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddToCart:
		for i, item := range state.Cart {
			if item.ID == a.Product.ID {
				cart := make([]CartItem, len(state.Cart))
				copy(cart, state.Cart)
				cart[i].Quantity++
				state.Cart = cart
				return state
			}
		}
		cart := make([]CartItem, 0, len(state.Cart)+1)
		cart = append(cart, state.Cart...)
		cart = append(cart, CartItem{Product: a.Product, Quantity: 1, SelectedSize: a.SelectedSize})
		state.Cart = cart
		return state

	case RemoveFromCart:
		cart := make([]CartItem, 0, len(state.Cart))
		for _, item := range state.Cart {
			if item.ID != a.ProductID {
				cart = append(cart, item)
			}
		}
		state.Cart = cart
		return state

	case SetCartQuantity:
		qty := a.Quantity
		if qty < 0 {
			qty = 0
		}
		cart := make([]CartItem, 0, len(state.Cart))
		for _, item := range state.Cart {
			if item.ID == a.ProductID {
				item.Quantity = qty
			}
			if item.Quantity > 0 {
				cart = append(cart, item)
			}
		}
		state.Cart = cart
		return state

	case ClearCart:
		state.Cart = []CartItem{}
		return state

	case AddToWishlist:
		for _, item := range state.Wishlist {
			if item.ID == a.Product.ID {
				return state
			}
		}
		list := make([]catalog.Product, 0, len(state.Wishlist)+1)
		list = append(list, state.Wishlist...)
		list = append(list, a.Product)
		state.Wishlist = list
		return state

	case RemoveFromWishlist:
		list := make([]catalog.Product, 0, len(state.Wishlist))
		for _, item := range state.Wishlist {
			if item.ID != a.ProductID {
				list = append(list, item)
			}
		}
		state.Wishlist = list
		return state

	case AddReview:
		reviews := make(map[int][]Review, len(state.Reviews)+1)
		for k, v := range state.Reviews {
			reviews[k] = v
		}
		reviews[a.ProductID] = append(append([]Review{}, reviews[a.ProductID]...), a.Review)
		state.Reviews = reviews
		return state

	case SetSearchQuery:
		state.SearchQuery = a.Query
		return state

	case SetFilters:
		state.Filters = state.Filters.Merge(a.Filters)
		return state

	case AddOrder:
		orders := make([]Order, 0, len(state.Orders)+1)
		orders = append(orders, state.Orders...)
		orders = append(orders, a.Order)
		state.Orders = orders
		return state

	case SetUser:
		state.User = a.User
		return state

	default:
		return state
	}
}
