package product_controller

import (
	"net/http"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/config"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Description Retrieve one active product by ID
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot, err := services.LoadSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	for _, p := range snapshot.Products {
		if p.ID == id {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", p))
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
