package catalog

import (
	"sort"
	"testing"
)

func TestSortProducts_PriceAscDesc(t *testing.T) {
	asc := SeedProducts()
	SortProducts(asc, SortPriceLow)
	if !sort.SliceIsSorted(asc, func(i, j int) bool { return asc[i].Price < asc[j].Price }) {
		t.Error("price-low not ascending")
	}

	desc := SeedProducts()
	SortProducts(desc, SortPriceHigh)
	if !sort.SliceIsSorted(desc, func(i, j int) bool { return desc[i].Price > desc[j].Price }) {
		t.Error("price-high not descending")
	}
}

func TestSortProducts_Name(t *testing.T) {
	products := SeedProducts()
	SortProducts(products, SortName)
	for i := 1; i < len(products); i++ {
		if products[i-1].Name > products[i].Name {
			t.Fatalf("names out of order: %q > %q", products[i-1].Name, products[i].Name)
		}
	}
}

func TestSortProducts_Newest(t *testing.T) {
	products := SeedProducts()
	SortProducts(products, SortNewest)
	for i := 1; i < len(products); i++ {
		if products[i-1].ID < products[i].ID {
			t.Fatalf("ids not descending at %d", i)
		}
	}
}

func TestSortProducts_FeaturedFirstStable(t *testing.T) {
	products := SeedProducts()
	SortProducts(products, SortFeatured)

	seenPlain := false
	for _, p := range products {
		if !p.Featured {
			seenPlain = true
		} else if seenPlain {
			t.Fatal("featured product after non-featured")
		}
	}

	// Relative order within each group is the original insertion order.
	lastFeatured, lastPlain := 0, 0
	for _, p := range products {
		if p.Featured {
			if p.ID < lastFeatured {
				t.Errorf("featured group unstable: %d after %d", p.ID, lastFeatured)
			}
			lastFeatured = p.ID
		} else {
			if p.ID < lastPlain {
				t.Errorf("non-featured group unstable: %d after %d", p.ID, lastPlain)
			}
			lastPlain = p.ID
		}
	}
}

func TestParseSortOption(t *testing.T) {
	if ParseSortOption("price-low") != SortPriceLow {
		t.Error("price-low not recognized")
	}
	if ParseSortOption("bogus") != SortFeatured {
		t.Error("unknown option should default to featured")
	}
	if ParseSortOption("") != SortFeatured {
		t.Error("empty option should default to featured")
	}
}
