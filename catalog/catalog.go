package catalog

import "strconv"

// Catalog is a read-only query surface over an ordered product list.
// All lookups are linear scans preserving insertion order; none can fail.
type Catalog struct {
	products []Product
}

// New creates a Catalog over the given records. The slice is not copied;
// callers hand over ownership.
func New(products []Product) *Catalog {
	return &Catalog{products: products}
}

// Products returns all records in insertion order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of catalog records.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID returns the first product whose id matches. The id may arrive as a
// route parameter string; it is coerced to an integer first. The second
// return value is false when no record matches.
func (c *Catalog) ByID(id string) (Product, bool) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return Product{}, false
	}
	return c.ByIDInt(n)
}

// ByIDInt is ByID for callers that already hold a numeric id.
func (c *Catalog) ByIDInt(id int) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ByCategory returns all products in a category, further narrowed by gender
// when gender is non-empty.
func (c *Catalog) ByCategory(category, gender string) []Product {
	out := []Product{}
	for _, p := range c.products {
		if p.Category != category {
			continue
		}
		if gender != "" && p.Gender != gender {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Featured returns all products flagged featured.
func (c *Catalog) Featured() []Product {
	out := []Product{}
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Trending returns all products flagged trending.
func (c *Catalog) Trending() []Product {
	out := []Product{}
	for _, p := range c.products {
		if p.Trending {
			out = append(out, p)
		}
	}
	return out
}
