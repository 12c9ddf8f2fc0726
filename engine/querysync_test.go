package engine

import (
	"net/url"
	"testing"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBounds = models.PriceRangeData{Min: 0, Max: 1000}

func TestParseQuery_AllFields(t *testing.T) {
	values := url.Values{}
	values.Set("categories", sneakersID.String()+","+apparelID.String())
	values.Set("minPrice", "25")
	values.Set("maxPrice", "150")
	values.Set("sort", "price-high")
	values.Set("page", "3")
	values.Set("search", "runner")

	state := ParseQuery(values, testCategories(), testBounds)

	require.Len(t, state.Categories, 2)
	assert.Equal(t, sneakersID, state.Categories[0].ID)
	assert.Equal(t, apparelID, state.Categories[1].ID)
	assert.Equal(t, models.PriceRangeData{Min: 25, Max: 150}, state.PriceRange)
	assert.Equal(t, SortPriceHigh, state.Sort)
	assert.Equal(t, 3, state.Page)
	assert.Equal(t, "runner", state.Search)
}

func TestParseQuery_EmptyYieldsDefaults(t *testing.T) {
	state := ParseQuery(url.Values{}, testCategories(), testBounds)

	assert.Empty(t, state.Categories)
	assert.Equal(t, testBounds, state.PriceRange)
	assert.Equal(t, SortLatest, state.Sort)
	assert.Equal(t, 1, state.Page)
	assert.Empty(t, state.Search)
}

func TestParseQuery_UnparsableFieldsFallBack(t *testing.T) {
	values := url.Values{}
	values.Set("categories", "not-a-uuid,also-bad")
	values.Set("minPrice", "cheap")
	values.Set("maxPrice", "expensive")
	values.Set("sort", "by-vibes")
	values.Set("page", "-2")

	state := ParseQuery(values, testCategories(), testBounds)

	assert.Empty(t, state.Categories)
	assert.Equal(t, testBounds, state.PriceRange)
	assert.Equal(t, SortLatest, state.Sort)
	assert.Equal(t, 1, state.Page)
}

func TestParseQuery_DropsUnknownCategoryIDs(t *testing.T) {
	values := url.Values{}
	values.Set("categories", uuid.Must(uuid.NewV7()).String()+","+bootsID.String())

	state := ParseQuery(values, testCategories(), testBounds)

	require.Len(t, state.Categories, 1)
	assert.Equal(t, bootsID, state.Categories[0].ID)
}

func TestParseQuery_InvertedPriceBoundsReordered(t *testing.T) {
	values := url.Values{}
	values.Set("minPrice", "200")
	values.Set("maxPrice", "50")

	state := ParseQuery(values, testCategories(), testBounds)
	assert.Equal(t, models.PriceRangeData{Min: 50, Max: 200}, state.PriceRange)
}

func TestQueryRoundTrip(t *testing.T) {
	original := FilterState{
		Categories: []models.Category{categoryByID(sneakersID), categoryByID(apparelID)},
		PriceRange: models.PriceRangeData{Min: 25, Max: 149.5},
		Sort:       SortPriceLow,
		Search:     "trail runner",
		Page:       7,
	}

	parsed := ParseQuery(original.QueryValues(), testCategories(), testBounds)

	require.Len(t, parsed.Categories, len(original.Categories))
	for i := range original.Categories {
		assert.Equal(t, original.Categories[i].ID, parsed.Categories[i].ID)
	}
	assert.Equal(t, original.PriceRange, parsed.PriceRange)
	assert.Equal(t, original.Sort, parsed.Sort)
	assert.Equal(t, original.Search, parsed.Search)
	assert.Equal(t, original.Page, parsed.Page)
}

func TestQueryValues_OmitsEmptyOptionalFields(t *testing.T) {
	state := DefaultState(testBounds)
	values := state.QueryValues()

	assert.Empty(t, values.Get("categories"))
	assert.Empty(t, values.Get("search"))
	assert.Equal(t, "latest", values.Get("sort"))
	assert.Equal(t, "1", values.Get("page"))
}
