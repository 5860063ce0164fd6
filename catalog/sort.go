package catalog

import "sort"

// SortOption selects the product ordering applied after filtering.
type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortName      SortOption = "name"
	SortNewest    SortOption = "newest"
)

// ParseSortOption maps a raw query value to a SortOption, defaulting to
// featured-first for unknown values.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortPriceLow, SortPriceHigh, SortName, SortNewest:
		return SortOption(s)
	default:
		return SortFeatured
	}
}

// SortProducts orders products in place. The featured-first default is a
// partial order, so the sort must be stable to keep the incoming relative
// order within each group.
func SortProducts(products []Product, by SortOption) {
	switch by {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
