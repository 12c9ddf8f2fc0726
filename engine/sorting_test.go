package engine

import (
	"testing"
	"time"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedProducts(prices ...float64) []models.Product {
	products := make([]models.Product, len(prices))
	for i, price := range prices {
		products[i] = testProduct("P", price, time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC))
	}
	return products
}

func TestSortProducts_PriceHigh(t *testing.T) {
	sorted := SortProducts(pricedProducts(10, 5, 20), SortPriceHigh)

	require.Len(t, sorted, 3)
	assert.Equal(t, []float64{20, 10, 5}, []float64{sorted[0].Price, sorted[1].Price, sorted[2].Price})
}

func TestSortProducts_PriceLow(t *testing.T) {
	sorted := SortProducts(pricedProducts(10, 5, 20), SortPriceLow)
	assert.Equal(t, []float64{5, 10, 20}, []float64{sorted[0].Price, sorted[1].Price, sorted[2].Price})
}

func TestSortProducts_LatestFirst(t *testing.T) {
	snap := testSnapshot()
	sorted := SortProducts(snap.Products, SortLatest)

	assert.Equal(t, []string{"Wool Sweater", "Chelsea Boot", "Trail Runner", "Court Sneaker"}, productNames(sorted))
}

func TestSortProducts_ZeroTimestampSortsOldest(t *testing.T) {
	dated := testProduct("Dated", 10, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	undated := testProduct("Undated", 10, time.Time{})

	sorted := SortProducts([]models.Product{undated, dated}, SortLatest)
	assert.Equal(t, []string{"Dated", "Undated"}, productNames(sorted))
}

func TestSortProducts_UnknownKeyFallsBackToLatest(t *testing.T) {
	snap := testSnapshot()
	assert.Equal(t,
		productNames(SortProducts(snap.Products, SortLatest)),
		productNames(SortProducts(snap.Products, "price-medium")))
}

func TestSortProducts_DoesNotMutateInput(t *testing.T) {
	products := pricedProducts(10, 5, 20)
	before := []float64{products[0].Price, products[1].Price, products[2].Price}

	SortProducts(products, SortPriceLow)
	assert.Equal(t, before, []float64{products[0].Price, products[1].Price, products[2].Price})
}

func TestNormalizeSortKey(t *testing.T) {
	assert.Equal(t, SortPriceLow, NormalizeSortKey("price-low"))
	assert.Equal(t, SortLatest, NormalizeSortKey(""))
	assert.Equal(t, SortLatest, NormalizeSortKey("nonsense"))
}
