package category_controller

import (
	"net/http"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/config"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/engine"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCategoryByID godoc
// @Summary Get a single storefront category
// @Description Retrieve one active category with its ancestor chain resolved
// @Tags Storefront - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid category ID"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Router /store/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot, err := services.LoadSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	byID := make(map[uuid.UUID]models.Category, len(snapshot.Categories))
	for _, cat := range snapshot.Categories {
		byID[cat.ID] = cat
	}

	cat, exists := byID[id]
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	// Resolve the ancestor chain (closest parent first) for breadcrumbs.
	ancestors := make(models.AncestorList, 0)
	for _, ancestorID := range engine.AncestorsOf(snapshot.Categories, id) {
		if ancestor, ok := byID[ancestorID]; ok {
			ancestors = append(ancestors, models.AncestorRef{
				ID:   ancestor.ID,
				Name: ancestor.Name,
				Slug: ancestor.Slug,
			})
		}
	}
	cat.Ancestors = ancestors
	level := len(ancestors)
	cat.Level = &level

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", cat))
}
