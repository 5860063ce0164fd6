package catalog

import "testing"

func TestSearch_EmptyQueryDefaultFilters(t *testing.T) {
	c := Default()
	got := c.Search("", DefaultFilters())
	if len(got) != c.Len() {
		t.Fatalf("results = %d, want full catalog (%d)", len(got), c.Len())
	}
	for i, p := range got {
		if p.ID != c.Products()[i].ID {
			t.Errorf("position %d: id = %d, want %d (insertion order)", i, p.ID, c.Products()[i].ID)
		}
	}
}

func TestSearch_TextMatchesNameCategoryFabric(t *testing.T) {
	c := Default()

	// "silk" appears in names and fabrics; cotton kurta must not match.
	for _, p := range c.Search("silk", FilterState{}) {
		if p.Name == "Classic White Kurta" {
			t.Error("cotton kurta matched query silk")
		}
	}
	// Known silk saree must be present.
	found := false
	for _, p := range c.Search("SILK", FilterState{}) {
		if p.ID == 1 {
			found = true
		}
	}
	if !found {
		t.Error("Royal Burgundy Silk Saree missing for case-insensitive query")
	}

	// Category substring match.
	if got := c.Search("sherwani", FilterState{}); len(got) != 1 || got[0].ID != 8 {
		t.Errorf("sherwani query = %v", got)
	}

	if got := c.Search("no-such-thing", FilterState{}); len(got) != 0 {
		t.Errorf("results = %d, want 0", len(got))
	}
}

func TestSearch_FacetsAreConjunctive(t *testing.T) {
	c := Default()

	got := c.Search("", FilterState{Fabric: "silk", Occasion: "wedding"})
	for _, p := range got {
		if p.Fabric != "silk" || p.Occasion != "wedding" {
			t.Errorf("product %d escaped facet filters", p.ID)
		}
	}
	if len(got) != 3 {
		t.Errorf("silk wedding products = %d, want 3", len(got))
	}

	// "all" sentinel places no constraint.
	if got := c.Search("", FilterState{Fabric: FilterAll}); len(got) != c.Len() {
		t.Errorf("sentinel filter narrowed results to %d", len(got))
	}
}

func TestSearch_Gender(t *testing.T) {
	c := Default()
	for _, p := range c.Search("", FilterState{Gender: "men"}) {
		if p.Gender != "men" {
			t.Errorf("product %d gender = %q", p.ID, p.Gender)
		}
	}
}

func TestSearch_PriceRangeInclusive(t *testing.T) {
	c := Default()
	got := c.Search("", FilterState{PriceRange: &[2]int{0, 2000}})
	want := map[int]bool{1299: true, 1599: true}
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	for _, p := range got {
		if !want[p.Price] {
			t.Errorf("unexpected price %d in [0,2000]", p.Price)
		}
	}

	// Bounds are inclusive.
	if got := c.Search("", FilterState{PriceRange: &[2]int{1299, 1299}}); len(got) != 1 {
		t.Errorf("exact-bound range = %d, want 1", len(got))
	}
}

func TestDefaultFilters_Unbounded(t *testing.T) {
	if f := DefaultFilters(); f.PriceRange != nil {
		t.Errorf("PriceRange = %v, want no bound", *f.PriceRange)
	}
	f := DefaultSessionFilters()
	if f.PriceRange == nil || f.PriceRange[0] != 0 || f.PriceRange[1] != 10000 {
		t.Errorf("session PriceRange = %v, want [0 10000]", f.PriceRange)
	}
}

func TestFilterState_Merge(t *testing.T) {
	f := DefaultSessionFilters()
	merged := f.Merge(FilterState{Fabric: "silk"})
	if merged.Fabric != "silk" {
		t.Errorf("Fabric = %q", merged.Fabric)
	}
	if merged.Category != FilterAll {
		t.Errorf("Category = %q, want untouched sentinel", merged.Category)
	}
	if merged.PriceRange == nil || merged.PriceRange[1] != 10000 {
		t.Error("PriceRange not retained by merge")
	}

	merged = merged.Merge(FilterState{PriceRange: &[2]int{0, 2000}, Gender: "women"})
	if merged.Fabric != "silk" || merged.Gender != "women" || merged.PriceRange[1] != 2000 {
		t.Errorf("second merge lost fields: %+v", merged)
	}
}
