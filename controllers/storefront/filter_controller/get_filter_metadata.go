package filter_controller

import (
	"net/http"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/config"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/engine"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns the category tree and derived price range that seed the storefront filter UI
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot, err := services.LoadSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	bounds := engine.PriceBounds(snapshot.Products)
	metadata := &models.FilterMetadata{
		Categories: categoryTree(snapshot.Categories),
		PriceRange: &models.PriceRangeData{Min: bounds.Min, Max: bounds.Max},
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// categoryTree builds the nested category structure for the filter panel.
// Same depth-first build as the categories endpoint: each subtree is complete
// before it is attached, so deep taxonomies render every level.
func categoryTree(categories []models.Category) []models.CategoryData {
	childrenOf := make(map[uuid.UUID][]models.Category, len(categories))
	for _, cat := range categories {
		if cat.ParentID != nil {
			childrenOf[*cat.ParentID] = append(childrenOf[*cat.ParentID], cat)
		}
	}

	visited := make(map[uuid.UUID]bool)

	var build func(cat models.Category) models.CategoryData
	build = func(cat models.Category) models.CategoryData {
		entry := models.CategoryData{
			ID:   cat.ID.String(),
			Name: cat.Name,
			Slug: cat.Slug,
		}
		if cat.ParentID != nil {
			entry.ParentID = cat.ParentID.String()
		}

		for _, child := range childrenOf[cat.ID] {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			entry.Subcategories = append(entry.Subcategories, build(child))
		}
		return entry
	}

	tree := make([]models.CategoryData, 0)
	for _, cat := range categories {
		if cat.ParentID == nil && !visited[cat.ID] {
			visited[cat.ID] = true
			tree = append(tree, build(cat))
		}
	}
	return tree
}
