package review

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ethnicshop.GO/api"
	"ethnicshop.GO/app"
	"ethnicshop.GO/store"
)

func init() {
	api.RegisterModule(RegisterReviewRoutes)
}

func RegisterReviewRoutes(apiGroup *echo.Group, a *app.App) {
	// GET /api/products/:id/reviews – reviews in submission order plus the
	// average rating of submitted reviews (0 when there are none)
	apiGroup.GET("/products/:id/reviews", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		reviews := a.Store.ProductReviews(id)
		return c.JSON(http.StatusOK, echo.Map{
			"items":   reviews,
			"average": averageRating(reviews),
		})
	})

	// POST /api/products/:id/reviews
	apiGroup.POST("/products/:id/reviews", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		if _, ok := a.Catalog.ByIDInt(id); !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		var draft store.ReviewDraft
		if err := c.Bind(&draft); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if draft.Rating < 1 || draft.Rating > 5 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
		}
		saved := a.Store.AddReview(id, draft)
		return c.JSON(http.StatusCreated, saved)
	})
}

func averageRating(reviews []store.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}
