// Package models holds the GraphQL-facing shapes. graphql-go maps Int to
// int32, so everything here converts from the wider engine types once, at
// the resolver boundary.
package models

import (
	"strconv"

	"ethnicshop.GO/catalog"
	"ethnicshop.GO/store"
)

type Product struct {
	ID              int32
	Name            string
	Category        string
	Gender          string
	Price           int32
	OriginalPrice   int32
	DiscountPercent int32
	Fabric          string
	Color           string
	Occasion        string
	Image           string
	Images          []string
	Description     string
	Care            string
	Sizes           []string
	InStock         bool
	Featured        bool
	Trending        bool
}

type CartItem struct {
	Product      *Product
	Quantity     int32
	SelectedSize *string
}

type CartSummary struct {
	Items []*CartItem
	Total int32
	Count int32
}

type Review struct {
	ID      string
	Name    string
	Rating  int32
	Title   *string
	Comment string
	Date    string
}

type Order struct {
	ID            string
	Items         []*CartItem
	Total         int32
	Status        string
	Date          string
	Address       string
	PaymentMethod string
}

func FromProduct(p catalog.Product) *Product {
	return &Product{
		ID:              int32(p.ID),
		Name:            p.Name,
		Category:        p.Category,
		Gender:          p.Gender,
		Price:           int32(p.Price),
		OriginalPrice:   int32(p.OriginalPrice),
		DiscountPercent: int32(p.DiscountPercent()),
		Fabric:          p.Fabric,
		Color:           p.Color,
		Occasion:        p.Occasion,
		Image:           p.Image,
		Images:          emptyIfNil(p.Images),
		Description:     p.Description,
		Care:            p.Care,
		Sizes:           emptyIfNil(p.Sizes),
		InStock:         p.InStock,
		Featured:        p.Featured,
		Trending:        p.Trending,
	}
}

func FromProducts(products []catalog.Product) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromCartItem(item store.CartItem) *CartItem {
	ci := &CartItem{
		Product:  FromProduct(item.Product),
		Quantity: int32(item.Quantity),
	}
	if item.SelectedSize != "" {
		size := item.SelectedSize
		ci.SelectedSize = &size
	}
	return ci
}

func FromCartItems(items []store.CartItem) []*CartItem {
	out := make([]*CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, FromCartItem(item))
	}
	return out
}

func FromReview(r store.Review) *Review {
	rv := &Review{
		ID:      strconv.FormatInt(r.ID, 10),
		Name:    r.Name,
		Rating:  int32(r.Rating),
		Comment: r.Comment,
		Date:    r.Date,
	}
	if r.Title != "" {
		title := r.Title
		rv.Title = &title
	}
	return rv
}

func FromOrder(o store.Order) *Order {
	return &Order{
		ID:            strconv.FormatInt(o.ID, 10),
		Items:         FromCartItems(o.Items),
		Total:         int32(o.Total),
		Status:        o.Status,
		Date:          o.Date,
		Address:       o.Address,
		PaymentMethod: o.PaymentMethod,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
