package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public paths (catalog browsing is read-only, no auth)
	return []string{
		"/api/catalog/products",
		"/api/catalog/products/:id",
		"/api/catalog/products/featured",
		"/api/catalog/products/trending",
		"/api/catalog/categories",
		"/graphql",
	}
}
