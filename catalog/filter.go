package catalog

import "strings"

// FilterState is the active facet selection for a browsing view. A facet set
// to "all" (or left empty) places no constraint; Gender is optional and has
// no sentinel. PriceRange is an inclusive [min,max] pair.
type FilterState struct {
	Category   string  `json:"category"`
	Fabric     string  `json:"fabric"`
	Color      string  `json:"color"`
	Occasion   string  `json:"occasion"`
	Gender     string  `json:"gender,omitempty"`
	PriceRange *[2]int `json:"priceRange,omitempty"`
}

// DefaultFilters returns the unconstrained filter set: every facet at the
// "all" sentinel and no price bound, so an empty-query search over it yields
// the full catalog. The [0,10000] slider default is session state, not a
// query constraint (see DefaultSessionFilters).
func DefaultFilters() FilterState {
	return FilterState{
		Category: FilterAll,
		Fabric:   FilterAll,
		Color:    FilterAll,
		Occasion: FilterAll,
	}
}

// DefaultSessionFilters is the initial shopper-facing filter selection,
// price slider parked at [0,10000].
func DefaultSessionFilters() FilterState {
	f := DefaultFilters()
	f.PriceRange = &[2]int{0, 10000}
	return f
}

// Merge overlays the set fields of patch onto f and returns the result.
// Zero-value fields of patch leave the existing selection untouched, matching
// the shallow-merge replacement of the filter map.
func (f FilterState) Merge(patch FilterState) FilterState {
	if patch.Category != "" {
		f.Category = patch.Category
	}
	if patch.Fabric != "" {
		f.Fabric = patch.Fabric
	}
	if patch.Color != "" {
		f.Color = patch.Color
	}
	if patch.Occasion != "" {
		f.Occasion = patch.Occasion
	}
	if patch.Gender != "" {
		f.Gender = patch.Gender
	}
	if patch.PriceRange != nil {
		f.PriceRange = patch.PriceRange
	}
	return f
}

func facetActive(v string) bool {
	return v != "" && v != FilterAll
}

// Search narrows the catalog with a free-text query and the active filters.
// The query is an OR across name, category and fabric (case-insensitive
// substring); every facet after that is conjunctive. Result order is catalog
// insertion order regardless of which filters applied.
func (c *Catalog) Search(query string, filters FilterState) []Product {
	out := []Product{}
	q := strings.ToLower(query)
	for _, p := range c.products {
		if q != "" {
			if !strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(p.Category), q) &&
				!strings.Contains(strings.ToLower(p.Fabric), q) {
				continue
			}
		}
		if facetActive(filters.Category) && p.Category != filters.Category {
			continue
		}
		if facetActive(filters.Fabric) && p.Fabric != filters.Fabric {
			continue
		}
		if facetActive(filters.Color) && p.Color != filters.Color {
			continue
		}
		if facetActive(filters.Occasion) && p.Occasion != filters.Occasion {
			continue
		}
		if filters.Gender != "" && p.Gender != filters.Gender {
			continue
		}
		if r := filters.PriceRange; r != nil {
			if p.Price < r[0] || p.Price > r[1] {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
