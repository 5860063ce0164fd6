package cart

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ethnicshop.GO/api"
	"ethnicshop.GO/app"
	"ethnicshop.GO/checkout"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

func RegisterCartRoutes(apiGroup *echo.Group, a *app.App) {
	g := apiGroup.Group("/cart")

	// GET /api/cart – current cart with derived totals and a price quote.
	// An optional promo query param is priced into the quote without
	// touching the cart; unknown codes quote a zero discount.
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"items": a.Store.Cart(),
			"total": a.Store.CartTotal(),
			"count": a.Store.CartCount(),
			"quote": checkout.NewQuote(a.Store.CartTotal(), c.QueryParam("promo")),
		})
	})

	// POST /api/cart/items – add a product (repeats increment quantity)
	g.POST("/items", func(c echo.Context) error {
		var body struct {
			ProductID    int    `json:"product_id"`
			SelectedSize string `json:"selected_size"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		p, ok := a.Catalog.ByIDInt(body.ProductID)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		a.Store.AddToCart(p, body.SelectedSize)
		return c.JSON(http.StatusOK, echo.Map{
			"items": a.Store.Cart(),
			"count": a.Store.CartCount(),
		})
	})

	// PUT /api/cart/items/:id – set quantity (0 removes the line)
	g.PUT("/items/:id", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		var body struct {
			Quantity int `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		a.Store.SetCartQuantity(id, body.Quantity)
		return c.JSON(http.StatusOK, echo.Map{
			"items": a.Store.Cart(),
			"count": a.Store.CartCount(),
		})
	})

	// DELETE /api/cart/items/:id
	g.DELETE("/items/:id", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		a.Store.RemoveFromCart(id)
		return c.JSON(http.StatusOK, echo.Map{
			"items": a.Store.Cart(),
			"count": a.Store.CartCount(),
		})
	})

	// DELETE /api/cart – empty the cart
	g.DELETE("", func(c echo.Context) error {
		a.Store.ClearCart()
		return c.JSON(http.StatusOK, echo.Map{"items": a.Store.Cart(), "count": 0})
	})
}
