package review

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

func reviewTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	a := &app.App{
		Catalog: catalog.Default(),
		Store:   store.New(store.Options{StateFile: filepath.Join(t.TempDir(), "state.json")}),
	}
	e := echo.New()
	RegisterReviewRoutes(e.Group("/api"), a)
	return e
}

func postJSON(e *echo.Echo, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestReviewAPI_SubmitAndList(t *testing.T) {
	e := reviewTestServer(t)

	rec := postJSON(e, "/api/products/2/reviews", map[string]interface{}{
		"name": "Priya", "rating": 5, "title": "Gorgeous", "comment": "Lovely drape",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body.String())
	}
	var saved store.Review
	if err := json.NewDecoder(rec.Body).Decode(&saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if saved.ID == 0 || saved.Date == "" {
		t.Errorf("review not stamped: %+v", saved)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products/2/reviews", nil)
	getRec := httptest.NewRecorder()
	e.ServeHTTP(getRec, req)
	var resp struct {
		Items   []store.Review `json:"items"`
		Average float64        `json:"average"`
	}
	if err := json.NewDecoder(getRec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Priya" {
		t.Errorf("reviews = %+v", resp.Items)
	}
	if resp.Average != 5 {
		t.Errorf("average = %v, want 5", resp.Average)
	}
}

func TestReviewAPI_AverageRounding(t *testing.T) {
	e := reviewTestServer(t)

	postJSON(e, "/api/products/1/reviews", map[string]interface{}{"name": "A", "rating": 5, "comment": "x"})
	postJSON(e, "/api/products/1/reviews", map[string]interface{}{"name": "B", "rating": 4, "comment": "x"})
	postJSON(e, "/api/products/1/reviews", map[string]interface{}{"name": "C", "rating": 4, "comment": "x"})

	req := httptest.NewRequest(http.MethodGet, "/api/products/1/reviews", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var resp struct {
		Average float64 `json:"average"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Average != 4.3 {
		t.Errorf("average = %v, want 4.3", resp.Average)
	}
}

func TestReviewAPI_RatingBounds(t *testing.T) {
	e := reviewTestServer(t)

	for _, rating := range []int{0, 6, -1} {
		rec := postJSON(e, "/api/products/1/reviews", map[string]interface{}{
			"name": "X", "rating": rating, "comment": "y",
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("rating %d status = %d, want 400", rating, rec.Code)
		}
	}
}

func TestReviewAPI_UnknownProduct(t *testing.T) {
	e := reviewTestServer(t)

	rec := postJSON(e, "/api/products/999/reviews", map[string]interface{}{
		"name": "X", "rating": 4, "comment": "y",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
