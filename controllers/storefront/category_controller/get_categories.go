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

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get all active categories as a tree with product counts (counts include subcategory products)
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot, err := services.LoadSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	tree := buildCategoryTree(snapshot)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
}

// buildCategoryTree assembles the hierarchical category response from the
// flat snapshot. Each subtree is built depth-first from a children index
// before its value is attached to the parent, so arbitrary-depth taxonomies
// come through intact. Product counts are inclusive: a parent's count covers
// every product tagged anywhere in its chain.
func buildCategoryTree(snapshot engine.Snapshot) []*models.StorefrontCategory {
	childrenOf := make(map[uuid.UUID][]models.Category, len(snapshot.Categories))
	for _, cat := range snapshot.Categories {
		if cat.ParentID != nil {
			childrenOf[*cat.ParentID] = append(childrenOf[*cat.ParentID], cat)
		}
	}

	visited := make(map[uuid.UUID]bool)

	var build func(cat models.Category) *models.StorefrontCategory
	build = func(cat models.Category) *models.StorefrontCategory {
		entry := &models.StorefrontCategory{
			ID:           cat.ID.String(),
			Name:         cat.Name,
			Slug:         cat.Slug,
			ProductCount: chainProductCount(snapshot, cat),
		}
		if cat.ParentID != nil {
			parentID := cat.ParentID.String()
			entry.ParentID = &parentID
		}

		for _, child := range childrenOf[cat.ID] {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			entry.Subcategories = append(entry.Subcategories, *build(child))
		}
		return entry
	}

	tree := make([]*models.StorefrontCategory, 0)
	for _, cat := range snapshot.Categories {
		if cat.ParentID == nil && !visited[cat.ID] {
			visited[cat.ID] = true
			tree = append(tree, build(cat))
		}
	}
	return tree
}

func chainProductCount(snapshot engine.Snapshot, cat models.Category) int {
	pred := engine.ByCategory(snapshot.Categories, []models.Category{cat})
	count := 0
	for _, p := range snapshot.Products {
		if pred(p) {
			count++
		}
	}
	return count
}
