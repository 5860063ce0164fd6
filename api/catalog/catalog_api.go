package catalog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ethnicshop.GO/api"
	"ethnicshop.GO/app"
	"ethnicshop.GO/catalog"
	"ethnicshop.GO/search"
	catalogService "ethnicshop.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

func RegisterCatalogRoutes(apiGroup *echo.Group, a *app.App) {
	g := apiGroup.Group("/catalog")

	// GET /api/catalog/products – filtered, searched, sorted product list
	g.GET("/products", func(c echo.Context) error {
		start := time.Now()

		filters := filtersFromQuery(c)
		query := c.QueryParam("q")
		sortBy := catalog.ParseSortOption(c.QueryParam("sort"))

		var products []catalog.Product
		if c.QueryParam("engine") == "es" && a.ES != nil {
			total, hits, err := search.Query(c.Request().Context(), a.ES, query, 0, 50)
			if err != nil {
				return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
			}
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return c.JSON(http.StatusOK, echo.Map{
				"items": hits,
				"total": total,
			})
		}

		products = catalogService.CachedSearch(a.Catalog, query, filters, sortBy)
		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"items": products,
			"total": len(products),
		})
	})

	// GET /api/catalog/products/featured
	g.GET("/products/featured", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"items": a.Catalog.Featured()})
	})

	// GET /api/catalog/products/trending
	g.GET("/products/trending", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"items": a.Catalog.Trending()})
	})

	// GET /api/catalog/products/:id
	g.GET("/products/:id", func(c echo.Context) error {
		p, ok := a.Catalog.ByID(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, p)
	})

	// GET /api/catalog/categories – navigation tree and facet vocabularies
	g.GET("/categories", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"categories":   catalog.Categories,
			"fabrics":      catalog.Fabrics,
			"colors":       catalog.Colors,
			"occasions":    catalog.Occasions,
			"price_ranges": catalog.PriceRanges,
		})
	})
}

// filtersFromQuery builds a filter patch from query params. Absent params
// stay zero so defaults apply.
func filtersFromQuery(c echo.Context) catalog.FilterState {
	filters := catalog.DefaultFilters()
	patch := catalog.FilterState{
		Category: c.QueryParam("category"),
		Fabric:   c.QueryParam("fabric"),
		Color:    c.QueryParam("color"),
		Occasion: c.QueryParam("occasion"),
		Gender:   c.QueryParam("gender"),
	}
	if minStr, maxStr := c.QueryParam("min_price"), c.QueryParam("max_price"); minStr != "" || maxStr != "" {
		pr := [2]int{0, 10000}
		if v, err := strconv.Atoi(minStr); err == nil {
			pr[0] = v
		}
		if v, err := strconv.Atoi(maxStr); err == nil {
			pr[1] = v
		}
		patch.PriceRange = &pr
	}
	return filters.Merge(patch)
}
