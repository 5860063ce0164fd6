package order

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ethnicshop.GO/api"
	"ethnicshop.GO/app"
	"ethnicshop.GO/checkout"
)

func init() {
	api.RegisterModule(RegisterOrderRoutes)
}

func RegisterOrderRoutes(apiGroup *echo.Group, a *app.App) {
	// POST /api/checkout – price the cart, place the order, empty the cart
	apiGroup.POST("/checkout", func(c echo.Context) error {
		start := time.Now()

		var in checkout.Input
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		placed, quote, err := a.Checkout.Checkout(c.Request().Context(), in)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusCreated, echo.Map{
			"order": placed,
			"quote": quote,
		})
	})

	// GET /api/orders – newest first is the caller's job, storage order here
	apiGroup.GET("/orders", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"items": a.Store.Orders()})
	})
}
