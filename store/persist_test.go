package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPersist_RoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state.json")

	s := New(Options{StateFile: file})
	s.AddToCart(product(1, 3499), "Free Size")
	s.AddToWishlist(product(3, 8999))
	s.AddReview(1, ReviewDraft{Name: "Meera", Rating: 5, Comment: "Beautiful"})

	reloaded := New(Options{StateFile: file})

	if len(reloaded.Wishlist()) != 1 || reloaded.Wishlist()[0].ID != 3 {
		t.Errorf("wishlist not restored: %v", reloaded.Wishlist())
	}
	reviews := reloaded.ProductReviews(1)
	if len(reviews) != 1 || reviews[0].Name != "Meera" {
		t.Errorf("reviews not restored: %v", reviews)
	}
	if reviews[0].ID == 0 || reviews[0].Date == "" {
		t.Error("stored review id/date not preserved through replay")
	}
	cart := reloaded.Cart()
	if len(cart) != 1 || cart[0].ID != 1 {
		t.Fatalf("cart not restored: %v", cart)
	}
}

func TestPersist_ReplayCollapsesQuantities(t *testing.T) {
	// Rehydration replays one AddToCart per stored line, so a stored
	// quantity of 3 comes back as 1. Deliberately preserved behavior.
	file := filepath.Join(t.TempDir(), "state.json")

	s := New(Options{StateFile: file})
	p := product(1, 1000)
	s.AddToCart(p, "")
	s.AddToCart(p, "")
	s.AddToCart(p, "")
	if s.Cart()[0].Quantity != 3 {
		t.Fatalf("quantity = %d before reload", s.Cart()[0].Quantity)
	}

	reloaded := New(Options{StateFile: file})
	cart := reloaded.Cart()
	if len(cart) != 1 {
		t.Fatalf("cart lines = %d, want 1", len(cart))
	}
	if cart[0].Quantity != 1 {
		t.Errorf("quantity = %d after replay, want 1", cart[0].Quantity)
	}
}

func TestPersist_CorruptSnapshotIgnored(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(file, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	// Must not panic; must come up with empty state.
	s := New(Options{StateFile: file})
	if len(s.Cart()) != 0 || len(s.Wishlist()) != 0 {
		t.Error("corrupt snapshot should yield empty state")
	}
}

func TestPersist_OrdersSavedButNotRestored(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state.json")

	s := New(Options{StateFile: file})
	s.AddOrder(Order{ID: 42, Status: "Processing", Total: 2500})

	snap, err := LoadSnapshot(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Orders) != 1 || snap.Orders[0].ID != 42 {
		t.Errorf("orders missing from snapshot: %v", snap.Orders)
	}

	// Replay restores cart/wishlist/reviews only.
	reloaded := New(Options{StateFile: file})
	if len(reloaded.Orders()) != 0 {
		t.Errorf("orders = %d after reload, want 0", len(reloaded.Orders()))
	}
}

func TestDecodeSnapshot_LegacyLooseTypes(t *testing.T) {
	// Older snapshots carry string ids and numeric flags; the decoder
	// coerces them instead of failing.
	data := []byte(`{
		"cart": [{"id": "2", "name": "Emerald Green Cotton Saree", "price": 1299, "quantity": 2, "inStock": 1}],
		"wishlist": [],
		"reviews": {"2": [{"id": 1700000000000, "name": "Rani", "rating": 4, "comment": "ok", "date": "2024-01-01T00:00:00Z"}]},
		"orders": []
	}`)

	snap, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if len(snap.Cart) != 1 || snap.Cart[0].ID != 2 {
		t.Errorf("cart = %+v", snap.Cart)
	}
	if !snap.Cart[0].InStock {
		t.Error("inStock flag not coerced")
	}
	if len(snap.Reviews[2]) != 1 || snap.Reviews[2][0].Rating != 4 {
		t.Errorf("reviews = %+v", snap.Reviews)
	}
}
