package product_controller

import (
	"encoding/json"
	"strconv"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseLimit reads the page-size query param. The page number itself is part
// of the shareable filter state and is parsed by the engine, not here.
func parseLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if limit < 1 || limit > 100 {
		limit = 12
	}
	return limit
}

// toStorefrontResponse maps products to the thin listing shape.
func toStorefrontResponse(products []models.Product) []models.StorefrontProductResponse {
	responses := make([]models.StorefrontProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, models.StorefrontProductResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			FinalPrice:  p.FinalPrice(),
			Discount:    p.Discount,
			Image:       primaryImage(p),
		})
	}
	return responses
}

// primaryImage pulls the primary image URL out of the media jsonb blob.
func primaryImage(p models.Product) string {
	if len(p.Media) == 0 {
		return ""
	}
	var media struct {
		Primary struct {
			URL string `json:"url"`
		} `json:"primary"`
	}
	if err := json.Unmarshal(p.Media, &media); err != nil {
		return ""
	}
	return media.Primary.URL
}
