package engine

import (
	"strings"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/google/uuid"
)

// Predicate decides whether a product survives one filter dimension.
// Predicates are pure; composition is plain conjunction.
type Predicate func(p models.Product) bool

// ByCategory builds the category-membership predicate. An empty selection is
// an open filter. Otherwise a product matches when its category list
// intersects the union of the selected categories' chains, so selecting a
// parent includes products tagged only with a subcategory.
func ByCategory(categories []models.Category, selected []models.Category) Predicate {
	if len(selected) == 0 {
		return func(models.Product) bool { return true }
	}

	chainUnion := make(map[uuid.UUID]bool)
	for _, sel := range selected {
		for _, id := range ChainOf(categories, sel.ID) {
			chainUnion[id] = true
		}
	}

	return func(p models.Product) bool {
		for _, id := range p.CategoryIDs {
			if chainUnion[id] {
				return true
			}
		}
		return false
	}
}

// ByPrice matches prices inside the range, inclusive at both ends.
func ByPrice(r models.PriceRangeData) Predicate {
	return func(p models.Product) bool {
		return p.Price >= r.Min && p.Price <= r.Max
	}
}

// BySearch matches a case-insensitive substring of the product name or
// description. A blank query is an open filter.
func BySearch(query string) Predicate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return func(models.Product) bool { return true }
	}

	return func(p models.Product) bool {
		if strings.Contains(strings.ToLower(p.Name), q) {
			return true
		}
		return p.Description != "" && strings.Contains(strings.ToLower(p.Description), q)
	}
}

// All combines predicates by logical AND.
func All(predicates ...Predicate) Predicate {
	return func(p models.Product) bool {
		for _, pred := range predicates {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Filter applies pred to every product and returns the survivors in a new
// slice; the input is never modified.
func Filter(products []models.Product, pred Predicate) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			result = append(result, p)
		}
	}
	return result
}
