package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromoDiscount(t *testing.T) {
	cases := []struct {
		code     string
		subtotal int
		discount int
		ok       bool
	}{
		{"WELCOME10", 1000, 100, true},
		{"welcome10", 1000, 100, true},
		{"FESTIVE20", 3499, 700, true},
		{"WEDDING25", 10000, 2500, true},
		{"EXPIRED99", 1000, 0, false},
		{"", 1000, 0, false},
	}
	for _, tc := range cases {
		discount, ok := PromoDiscount(tc.code, tc.subtotal)
		assert.Equal(t, tc.discount, discount, "code %q", tc.code)
		assert.Equal(t, tc.ok, ok, "code %q", tc.code)
	}
}

func TestShippingFee(t *testing.T) {
	assert.Equal(t, 99, ShippingFee(1999))
	assert.Equal(t, 0, ShippingFee(2000))
	assert.Equal(t, 0, ShippingFee(12999))
}

func TestTax(t *testing.T) {
	assert.Equal(t, 180, Tax(1000))
	assert.Equal(t, 630, Tax(3499)) // 629.82 rounds up
}

func TestNewQuote(t *testing.T) {
	q := NewQuote(3499, "WELCOME10")
	assert.Equal(t, 3499, q.Subtotal)
	assert.Equal(t, 350, q.Discount)
	assert.Equal(t, "WELCOME10", q.PromoCode)
	assert.Equal(t, 0, q.ShippingFee)
	assert.Equal(t, 630, q.Tax)
	assert.Equal(t, 3499-350+630, q.Total)
}

func TestNewQuote_InvalidPromo(t *testing.T) {
	q := NewQuote(1000, "NOPE")
	assert.Equal(t, 0, q.Discount)
	assert.Empty(t, q.PromoCode)
	assert.Equal(t, 99, q.ShippingFee)
	assert.Equal(t, 1000+99+180, q.Total)
}
