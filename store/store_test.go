package store

import (
	"path/filepath"
	"testing"

	"ethnicshop.GO/catalog"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(Options{StateFile: filepath.Join(t.TempDir(), "state.json")})
}

func TestStore_CartTotalAndCount(t *testing.T) {
	s := testStore(t)
	s.AddToCart(product(1, 1000), "")
	s.AddToCart(product(1, 1000), "")
	s.AddToCart(product(2, 500), "")

	if got := s.CartTotal(); got != 2500 {
		t.Errorf("CartTotal = %d, want 2500", got)
	}
	if got := s.CartCount(); got != 3 {
		t.Errorf("CartCount = %d, want 3", got)
	}
}

func TestStore_WishlistMembership(t *testing.T) {
	s := testStore(t)
	s.AddToWishlist(product(4, 4999))

	if !s.InWishlist(4) {
		t.Error("InWishlist(4) = false after add")
	}
	if s.InWishlist(5) {
		t.Error("InWishlist(5) = true, want false")
	}
}

func TestStore_AddReview_AssignsIDAndDate(t *testing.T) {
	s := testStore(t)
	r := s.AddReview(2, ReviewDraft{Name: "Priya", Rating: 5, Comment: "Lovely saree"})

	if r.ID == 0 {
		t.Error("review id not assigned")
	}
	if r.Date == "" {
		t.Error("review date not assigned")
	}

	got := s.ProductReviews(2)
	if len(got) != 1 || got[0].ID != r.ID {
		t.Errorf("ProductReviews(2) = %v", got)
	}
	if got := s.ProductReviews(99); len(got) != 0 {
		t.Errorf("ProductReviews(99) = %d entries, want empty", len(got))
	}
}

func TestStore_SearchQueryVerbatim(t *testing.T) {
	s := testStore(t)
	s.SetSearchQuery("  silk saree  ")
	if got := s.SearchQuery(); got != "  silk saree  " {
		t.Errorf("SearchQuery = %q, want verbatim value", got)
	}
}

func TestStore_OrdersAppendOnly(t *testing.T) {
	s := testStore(t)
	s.AddOrder(Order{ID: 1, Status: "Processing"})
	s.AddOrder(Order{ID: 2, Status: "Processing"})

	orders := s.Orders()
	if len(orders) != 2 || orders[0].ID != 1 || orders[1].ID != 2 {
		t.Errorf("orders = %v, want ids [1 2] in append order", orders)
	}
}

func TestStore_SetUser(t *testing.T) {
	s := testStore(t)
	s.SetUser(&User{Name: "Asha"})
	if u := s.User(); u == nil || u.Name != "Asha" {
		t.Errorf("User = %v", u)
	}
	s.SetUser(nil)
	if s.User() != nil {
		t.Error("User not cleared")
	}
}

func TestStore_FiltersMergeThroughActions(t *testing.T) {
	s := testStore(t)
	s.SetFilters(catalog.FilterState{Fabric: "cotton"})
	s.SetFilters(catalog.FilterState{PriceRange: &[2]int{0, 2000}})

	f := s.Filters()
	if f.Fabric != "cotton" {
		t.Errorf("Fabric = %q", f.Fabric)
	}
	if f.PriceRange == nil || f.PriceRange[1] != 2000 {
		t.Errorf("PriceRange = %v", f.PriceRange)
	}
}
