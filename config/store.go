package config

import (
	"os"
	"strconv"
	"time"
)

// Shopper-session store and checkout settings. Prices are in minor currency
// units throughout.
const (
	// Free shipping at or above this subtotal, otherwise FlatShippingFee applies.
	FreeShippingMin = 2000
	FlatShippingFee = 99

	// GST applied to the cart subtotal.
	TaxRate = 0.18
)

// PromoCodes maps uppercased promo codes to their fractional discount.
var PromoCodes = map[string]float64{
	"WELCOME10": 0.10,
	"FESTIVE20": 0.20,
	"WEDDING25": 0.25,
}

// StateFilePath returns the path of the durable session-state snapshot.
func StateFilePath() string {
	if p := os.Getenv("STATE_FILE"); p != "" {
		return p
	}
	return "ethnicshop_state.json"
}

// CheckoutDelay returns the simulated payment-processing duration.
func CheckoutDelay() time.Duration {
	if v := os.Getenv("CHECKOUT_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return 2 * time.Second
}
