package product_controller

import (
	"log"
	"net/http"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/config"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/engine"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve active storefront products filtered by category (inclusive of subcategories), price range and search text, sorted and paginated. The query string is the shareable filter representation.
// @Tags Storefront - Products
// @Produce json
// @Param categories query string false "Comma-joined category IDs"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param sort query string false "Sort key (latest | price-low | price-high)" default(latest)
// @Param search query string false "Search text (name or description)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot, err := services.LoadSnapshot(ctx)
	if err != nil {
		log.Printf("ERROR loading catalog snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// The query string is read once per request; every field falls back to
	// its default when absent or unparsable.
	bounds := engine.PriceBounds(snapshot.Products)
	state := engine.ParseQuery(c.Request.URL.Query(), snapshot.Categories, bounds)
	limit := parseLimit(c)

	result := engine.RecomputeNow(state, snapshot)
	page := engine.Paginate(result, state.Page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		toStorefrontResponse(page),
		engine.PaginationMeta(state.Page, limit, len(result)),
	))
}
