package checkout

import (
	"math"
	"strings"

	"ethnicshop.GO/config"
)

// Quote is the full price breakdown for a cart subtotal. All amounts are in
// minor currency units.
type Quote struct {
	Subtotal    int    `json:"subtotal"`
	Discount    int    `json:"discount"`
	PromoCode   string `json:"promoCode,omitempty"`
	ShippingFee int    `json:"shippingFee"`
	Tax         int    `json:"tax"`
	Total       int    `json:"total"`
}

// PromoDiscount resolves a promo code against the known set. Codes match
// case-insensitively. An unknown code is not an error: it yields a zero
// discount and ok=false so callers can surface "invalid promo code".
func PromoDiscount(code string, subtotal int) (discount int, ok bool) {
	if code == "" {
		return 0, false
	}
	rate, ok := config.PromoCodes[strings.ToUpper(code)]
	if !ok {
		return 0, false
	}
	return int(math.Round(float64(subtotal) * rate)), true
}

// ShippingFee is flat, waived above the free-shipping threshold.
func ShippingFee(subtotal int) int {
	if subtotal >= config.FreeShippingMin {
		return 0
	}
	return config.FlatShippingFee
}

// Tax applies GST to the subtotal, rounded to the nearest unit.
func Tax(subtotal int) int {
	return int(math.Round(float64(subtotal) * config.TaxRate))
}

// NewQuote prices a subtotal with an optional promo code.
func NewQuote(subtotal int, promoCode string) Quote {
	discount, ok := PromoDiscount(promoCode, subtotal)
	q := Quote{
		Subtotal:    subtotal,
		Discount:    discount,
		ShippingFee: ShippingFee(subtotal),
		Tax:         Tax(subtotal),
	}
	if ok {
		q.PromoCode = strings.ToUpper(promoCode)
	}
	q.Total = q.Subtotal - q.Discount + q.ShippingFee + q.Tax
	return q
}
