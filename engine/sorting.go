package engine

import (
	"sort"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
)

// Sort keys accepted from the query representation.
const (
	SortLatest    = "latest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// comparators maps a sort key to a less function. Keys arrive from untrusted
// query strings, so lookup falls back to SortLatest instead of erroring.
var comparators = map[string]func(a, b models.Product) bool{
	SortLatest: func(a, b models.Product) bool {
		// Zero timestamps sort as the oldest.
		return a.CreatedAt.After(b.CreatedAt)
	},
	SortPriceLow: func(a, b models.Product) bool {
		return a.Price < b.Price
	},
	SortPriceHigh: func(a, b models.Product) bool {
		return a.Price > b.Price
	},
}

// NormalizeSortKey maps an unknown sort key to the default.
func NormalizeSortKey(key string) string {
	if _, ok := comparators[key]; !ok {
		return SortLatest
	}
	return key
}

// SortProducts returns a sorted copy of products ordered by the comparator
// registered for key. The input slice is never reordered in place.
func SortProducts(products []models.Product, key string) []models.Product {
	less := comparators[NormalizeSortKey(key)]

	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
