package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"ethnicshop.GO/catalog"
	"ethnicshop.GO/core/metrics"
)

// EventPublisher receives store events (order created, cart changed) when
// configured. Publishing is fire-and-forget; failures never affect an action.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event interface{}) error
}

// Options configures a Store.
type Options struct {
	// StateFile is the durable snapshot path. Empty disables persistence.
	StateFile string
	Publisher EventPublisher
	Logger    *zap.Logger
}

// Store is the single source of truth for one shopper session. Every
// mutation goes through the reducer under one mutex, so actions apply
// atomically from the caller's perspective, and the snapshot of
// {cart, wishlist, reviews, orders} is rewritten after each one.
type Store struct {
	mu        sync.Mutex
	state     State
	stateFile string
	publisher EventPublisher
	log       *zap.Logger
}

// New creates a Store and, when a prior snapshot exists at the state file,
// rehydrates it by replaying the stored records through the normal action
// vocabulary. A malformed snapshot is logged and ignored.
func New(opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		state:     NewState(),
		stateFile: opts.StateFile,
		publisher: opts.Publisher,
		log:       log,
	}
	if opts.StateFile != "" {
		snap, err := LoadSnapshot(opts.StateFile)
		if err != nil {
			// Treat unreadable or corrupt snapshots as no prior state.
			s.log.Warn("state snapshot not restored", zap.String("file", opts.StateFile), zap.Error(err))
		} else if snap != nil {
			s.rehydrate(*snap)
		}
	}
	return s
}

// apply runs one action through the reducer and persists the result.
func (s *Store) apply(action Action) {
	s.mu.Lock()
	s.state = reduce(s.state, action)
	s.persistLocked()
	s.mu.Unlock()
	metrics.StoreActionCounter.WithLabelValues(action.kind()).Inc()
}

// rehydrate replays a snapshot through the same action vocabulary used for
// live mutations. Cart quantities collapse to one increment per stored line,
// and orders/user are not restored.
func (s *Store) rehydrate(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range snap.Cart {
		s.state = reduce(s.state, AddToCart{Product: item.Product, SelectedSize: item.SelectedSize})
	}
	for _, p := range snap.Wishlist {
		s.state = reduce(s.state, AddToWishlist{Product: p})
	}
	for productID, reviews := range snap.Reviews {
		for _, r := range reviews {
			s.state = reduce(s.state, AddReview{ProductID: productID, Review: r})
		}
	}
	s.persistLocked()
}

// --- Action methods (one per vocabulary entry, all total) ---

func (s *Store) AddToCart(p catalog.Product, selectedSize string) {
	s.apply(AddToCart{Product: p, SelectedSize: selectedSize})
	s.publish("cart.changed", strconv.Itoa(p.ID), map[string]interface{}{"productId": p.ID, "op": "add"})
}

func (s *Store) RemoveFromCart(productID int) {
	s.apply(RemoveFromCart{ProductID: productID})
	s.publish("cart.changed", strconv.Itoa(productID), map[string]interface{}{"productId": productID, "op": "remove"})
}

func (s *Store) SetCartQuantity(productID, quantity int) {
	s.apply(SetCartQuantity{ProductID: productID, Quantity: quantity})
	s.publish("cart.changed", strconv.Itoa(productID), map[string]interface{}{"productId": productID, "op": "set_quantity"})
}

func (s *Store) ClearCart() {
	s.apply(ClearCart{})
}

func (s *Store) AddToWishlist(p catalog.Product) {
	s.apply(AddToWishlist{Product: p})
	s.publish("wishlist.changed", strconv.Itoa(p.ID), map[string]interface{}{"productId": p.ID, "op": "add"})
}

func (s *Store) RemoveFromWishlist(productID int) {
	s.apply(RemoveFromWishlist{ProductID: productID})
	s.publish("wishlist.changed", strconv.Itoa(productID), map[string]interface{}{"productId": productID, "op": "remove"})
}

// ReviewDraft is the shopper-supplied part of a review.
type ReviewDraft struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// AddReview stamps the draft with a time-derived id and ISO date, appends it
// and returns the stored review.
func (s *Store) AddReview(productID int, draft ReviewDraft) Review {
	review := Review{
		ID:      time.Now().UnixMilli(),
		Name:    draft.Name,
		Rating:  draft.Rating,
		Title:   draft.Title,
		Comment: draft.Comment,
		Date:    time.Now().UTC().Format(time.RFC3339),
	}
	s.apply(AddReview{ProductID: productID, Review: review})
	s.publish("review.added", strconv.Itoa(productID), map[string]interface{}{"productId": productID, "reviewId": review.ID})
	return review
}

func (s *Store) SetSearchQuery(query string) {
	s.apply(SetSearchQuery{Query: query})
}

func (s *Store) SetFilters(patch catalog.FilterState) {
	s.apply(SetFilters{Filters: patch})
}

func (s *Store) AddOrder(order Order) {
	s.apply(AddOrder{Order: order})
	s.publish("order.created", strconv.FormatInt(order.ID, 10), map[string]interface{}{"orderId": order.ID, "total": order.Total})
}

func (s *Store) SetUser(u *User) {
	s.apply(SetUser{User: u})
}

// --- Derived reads (computed on demand, never stored) ---

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartItem{}, s.state.Cart...)
}

// CartTotal returns sum(price * quantity) over all lines.
func (s *Store) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.state.Cart {
		total += item.Price * item.Quantity
	}
	return total
}

// CartCount returns sum(quantity) over all lines.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.state.Cart {
		count += item.Quantity
	}
	return count
}

// Wishlist returns a copy of the wishlist entries.
func (s *Store) Wishlist() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Product{}, s.state.Wishlist...)
}

// InWishlist reports wishlist membership by product id.
func (s *Store) InWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.Wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// ProductReviews returns the reviews for a product in insertion order, or an
// empty slice when none exist.
func (s *Store) ProductReviews(productID int) []Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Review{}, s.state.Reviews[productID]...)
}

// Orders returns a copy of the order history.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Order{}, s.state.Orders...)
}

// SearchQuery returns the current search query.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SearchQuery
}

// Filters returns the active filter selection.
func (s *Store) Filters() catalog.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Filters
}

// User returns the session identity, or nil.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

func (s *Store) publish(topic, key string, event map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publisher.PublishEvent(ctx, topic, key, event); err != nil {
			s.log.Warn("event publish failed", zap.String("topic", topic), zap.Error(err))
		}
	}()
}
