package wishlist

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ethnicshop.GO/api"
	"ethnicshop.GO/app"
)

func init() {
	api.RegisterModule(RegisterWishlistRoutes)
}

func RegisterWishlistRoutes(apiGroup *echo.Group, a *app.App) {
	g := apiGroup.Group("/wishlist")

	// GET /api/wishlist
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"items": a.Store.Wishlist()})
	})

	// POST /api/wishlist – add by product id, idempotent
	g.POST("", func(c echo.Context) error {
		var body struct {
			ProductID int `json:"product_id"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		p, ok := a.Catalog.ByIDInt(body.ProductID)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		a.Store.AddToWishlist(p)
		return c.JSON(http.StatusOK, echo.Map{"items": a.Store.Wishlist()})
	})

	// DELETE /api/wishlist/:id
	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		a.Store.RemoveFromWishlist(id)
		return c.JSON(http.StatusOK, echo.Map{"items": a.Store.Wishlist()})
	})
}
