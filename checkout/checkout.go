package checkout

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"ethnicshop.GO/store"
)

var ErrEmptyCart = errors.New("checkout: cart is empty")

// Service runs the purchase-intent flow: price the cart, simulate payment
// processing, record the order and clear the cart. There is no real payment
// gateway; the processing step is a fixed delay with no failure path.
type Service struct {
	Store *store.Store
	// Delay is the simulated payment-processing duration.
	Delay time.Duration
	Log   *zap.Logger
}

func NewService(s *store.Store, delay time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Store: s, Delay: delay, Log: log}
}

// Input carries the shopper-supplied checkout fields.
type Input struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
	PromoCode     string `json:"promoCode"`
}

// Checkout prices the current cart, waits out the simulated processing
// delay (cancellable through ctx), then appends the order and clears the
// cart. Returns the recorded order and its quote.
func (s *Service) Checkout(ctx context.Context, in Input) (store.Order, Quote, error) {
	items := s.Store.Cart()
	if len(items) == 0 {
		return store.Order{}, Quote{}, ErrEmptyCart
	}

	quote := NewQuote(s.Store.CartTotal(), in.PromoCode)

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return store.Order{}, Quote{}, ctx.Err()
		}
	}

	address := in.Address
	if address == "" {
		address = "Sample Address"
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Credit Card"
	}

	order := store.Order{
		ID:            time.Now().UnixMilli(),
		Items:         items,
		Total:         quote.Total,
		Status:        "Processing",
		Date:          time.Now().UTC().Format(time.RFC3339),
		Address:       address,
		PaymentMethod: paymentMethod,
	}

	s.Store.AddOrder(order)
	s.Store.ClearCart()
	s.Log.Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.Int("total", order.Total),
		zap.Int("lines", len(order.Items)),
	)
	return order, quote, nil
}
