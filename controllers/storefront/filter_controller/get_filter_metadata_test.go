package filter_controller

import (
	"testing"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTree(t *testing.T) {
	homeID := uuid.Must(uuid.NewV7())
	lightingID := uuid.Must(uuid.NewV7())

	tree := categoryTree([]models.Category{
		{ID: homeID, Name: "Home", Slug: "home"},
		{ID: lightingID, Name: "Lighting", Slug: "lighting", ParentID: &homeID},
	})

	require.Len(t, tree, 1)
	assert.Equal(t, "Home", tree[0].Name)
	assert.Empty(t, tree[0].ParentID)

	require.Len(t, tree[0].Subcategories, 1)
	assert.Equal(t, "Lighting", tree[0].Subcategories[0].Name)
	assert.Equal(t, homeID.String(), tree[0].Subcategories[0].ParentID)
}

func TestCategoryTree_OrphanSubcategoryExcluded(t *testing.T) {
	missing := uuid.Must(uuid.NewV7())
	tree := categoryTree([]models.Category{
		{ID: uuid.Must(uuid.NewV7()), Name: "Stray", Slug: "stray", ParentID: &missing},
	})
	assert.Empty(t, tree)
}

func TestCategoryTree_DepthThree(t *testing.T) {
	shoesID := uuid.Must(uuid.NewV7())
	sneakersID := uuid.Must(uuid.NewV7())
	runningID := uuid.Must(uuid.NewV7())

	tree := categoryTree([]models.Category{
		{ID: shoesID, Name: "Shoes", Slug: "shoes"},
		{ID: sneakersID, Name: "Sneakers", Slug: "sneakers", ParentID: &shoesID},
		{ID: runningID, Name: "Running", Slug: "running", ParentID: &sneakersID},
	})

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Subcategories, 1)

	sneakers := tree[0].Subcategories[0]
	require.Len(t, sneakers.Subcategories, 1)
	assert.Equal(t, "Running", sneakers.Subcategories[0].Name)
}

func TestCategoryTree_Empty(t *testing.T) {
	assert.Empty(t, categoryTree(nil))
}
