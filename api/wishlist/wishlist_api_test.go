package wishlist

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"

	"ethnicshop.GO/app"
	"ethnicshop.GO/catalog"
	"ethnicshop.GO/store"
)

func wishlistTestServer(t *testing.T) (*echo.Echo, *app.App) {
	t.Helper()
	a := &app.App{
		Catalog: catalog.Default(),
		Store:   store.New(store.Options{StateFile: filepath.Join(t.TempDir(), "state.json")}),
	}
	e := echo.New()
	RegisterWishlistRoutes(e.Group("/api"), a)
	return e, a
}

func addToWishlist(e *echo.Echo, productID int) *httptest.ResponseRecorder {
	b, _ := json.Marshal(map[string]int{"product_id": productID})
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWishlistAPI_AddIsIdempotent(t *testing.T) {
	e, a := wishlistTestServer(t)

	for i := 0; i < 3; i++ {
		if rec := addToWishlist(e, 4); rec.Code != http.StatusOK {
			t.Fatalf("POST status = %d", rec.Code)
		}
	}
	if got := len(a.Store.Wishlist()); got != 1 {
		t.Errorf("wishlist size = %d, want 1", got)
	}
}

func TestWishlistAPI_Remove(t *testing.T) {
	e, a := wishlistTestServer(t)

	addToWishlist(e, 5)
	req := httptest.NewRequest(http.MethodDelete, "/api/wishlist/5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d", rec.Code)
	}
	if len(a.Store.Wishlist()) != 0 {
		t.Errorf("wishlist not empty: %+v", a.Store.Wishlist())
	}
}

func TestWishlistAPI_UnknownProduct(t *testing.T) {
	e, _ := wishlistTestServer(t)

	if rec := addToWishlist(e, 999); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
