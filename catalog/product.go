package catalog

import "math"

// Product is one immutable catalog record. Prices are integers in minor
// currency units. OriginalPrice is always >= Price.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Gender        string   `json:"gender"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice"`
	Fabric        string   `json:"fabric"`
	Color         string   `json:"color"`
	Occasion      string   `json:"occasion"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Care          string   `json:"care"`
	Sizes         []string `json:"sizes"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
	Trending      bool     `json:"trending"`
}

// DiscountPercent returns the rounded discount derived from the price pair.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round(float64(p.OriginalPrice-p.Price) / float64(p.OriginalPrice) * 100))
}
