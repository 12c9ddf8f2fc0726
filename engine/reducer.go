package engine

import (
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/google/uuid"
)

// FilterState is the engine's state of record: what the shopper has selected.
// Derived values (price bounds, counts) live on the Engine, not here.
type FilterState struct {
	Categories []models.Category
	PriceRange models.PriceRangeData
	Sort       string
	Search     string
	Page       int
}

// DefaultState returns the open filter over the given price bounds.
func DefaultState(bounds models.PriceRangeData) FilterState {
	return FilterState{
		Categories: []models.Category{},
		PriceRange: bounds,
		Sort:       SortLatest,
		Search:     "",
		Page:       1,
	}
}

// ═══════════════════════════════════════════════════════════
// Actions
// ═══════════════════════════════════════════════════════════

// Action is one state transition. Every action except SetPage resets the page
// to 1: changing the criteria invalidates the previous page's meaning.
type Action interface {
	isAction()
}

type SetCategories struct{ Categories []models.Category }
type SetPriceRange struct{ Range models.PriceRangeData }
type SetSort struct{ Key string }
type SetPage struct{ Page int }
type SetSearch struct{ Query string }
type ResetPrice struct{ Bounds models.PriceRangeData }
type ResetSort struct{}

func (SetCategories) isAction() {}
func (SetPriceRange) isAction() {}
func (SetSort) isAction()       {}
func (SetPage) isAction()       {}
func (SetSearch) isAction()     {}
func (ResetPrice) isAction()    {}
func (ResetSort) isAction()     {}

// Reduce is the pure transition function. It never mutates its input.
func Reduce(state FilterState, action Action) FilterState {
	next := state

	switch a := action.(type) {
	case SetCategories:
		next.Categories = a.Categories
		next.Page = 1
	case SetPriceRange:
		r := a.Range
		if r.Min > r.Max {
			r.Min, r.Max = r.Max, r.Min
		}
		next.PriceRange = r
		next.Page = 1
	case SetSort:
		next.Sort = NormalizeSortKey(a.Key)
		next.Page = 1
	case SetPage:
		if a.Page >= 1 {
			next.Page = a.Page
		}
	case SetSearch:
		next.Search = a.Query
		next.Page = 1
	case ResetPrice:
		next.PriceRange = a.Bounds
		next.Page = 1
	case ResetSort:
		next.Sort = SortLatest
		next.Page = 1
	}

	return next
}

// ToggleCategory derives the SetCategories action for toggling c.
//
// Removing an already-selected category is a plain removal. Adding one first
// purges every selected ancestor or descendant of c, so the selection never
// contains two categories from the same chain and products are never matched
// twice through overlapping chains.
func ToggleCategory(state FilterState, categories []models.Category, c models.Category) SetCategories {
	for _, sel := range state.Categories {
		if sel.ID == c.ID {
			return SetCategories{Categories: removeCategory(state.Categories, c.ID)}
		}
	}

	related := make(map[uuid.UUID]bool)
	for _, id := range AncestorsOf(categories, c.ID) {
		related[id] = true
	}
	for _, id := range DescendantsOf(categories, c.ID) {
		related[id] = true
	}

	next := make([]models.Category, 0, len(state.Categories)+1)
	for _, sel := range state.Categories {
		if !related[sel.ID] {
			next = append(next, sel)
		}
	}
	next = append(next, c)

	return SetCategories{Categories: next}
}

func removeCategory(selection []models.Category, id uuid.UUID) []models.Category {
	next := make([]models.Category, 0, len(selection))
	for _, sel := range selection {
		if sel.ID != id {
			next = append(next, sel)
		}
	}
	return next
}
