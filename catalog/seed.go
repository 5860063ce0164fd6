package catalog

import (
	"encoding/json"

	_ "embed"
)

//go:embed products.json
var seedJSON []byte

// SeedProducts returns the built-in catalog records in insertion order.
// The slice is freshly decoded on every call so callers can't mutate the seed.
func SeedProducts() []Product {
	var products []Product
	if err := json.Unmarshal(seedJSON, &products); err != nil {
		// The seed is embedded at build time; a decode failure is a build defect.
		panic("catalog: invalid embedded seed: " + err.Error())
	}
	return products
}

// Default returns a Catalog over the embedded seed records.
func Default() *Catalog {
	return New(SeedProducts())
}
