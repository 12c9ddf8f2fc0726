package engine

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/google/uuid"
)

// Query representation field names. The encoding is a flat string-keyed
// mapping suitable for embedding in a shareable URL query string.
const (
	queryKeyCategories = "categories"
	queryKeyMinPrice   = "minPrice"
	queryKeyMaxPrice   = "maxPrice"
	queryKeySort       = "sort"
	queryKeyPage       = "page"
	queryKeySearch     = "search"
)

// ParseQuery reads a filter state out of the external query representation.
// Every field is independent and defensive: absent or unparsable values fall
// back to the field's default (empty selection, derived price bounds,
// latest sort, page 1, empty search). Category ids with no match in the
// snapshot are dropped.
func ParseQuery(values url.Values, categories []models.Category, bounds models.PriceRangeData) FilterState {
	state := DefaultState(bounds)

	if raw := values.Get(queryKeyCategories); raw != "" {
		byID := make(map[uuid.UUID]models.Category, len(categories))
		for _, cat := range categories {
			byID[cat.ID] = cat
		}
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			if cat, ok := byID[id]; ok {
				state.Categories = append(state.Categories, cat)
			}
		}
	}

	if min, err := strconv.ParseFloat(values.Get(queryKeyMinPrice), 64); err == nil {
		state.PriceRange.Min = min
	}
	if max, err := strconv.ParseFloat(values.Get(queryKeyMaxPrice), 64); err == nil {
		state.PriceRange.Max = max
	}
	if state.PriceRange.Min > state.PriceRange.Max {
		state.PriceRange.Min, state.PriceRange.Max = state.PriceRange.Max, state.PriceRange.Min
	}

	if sort := values.Get(queryKeySort); sort != "" {
		state.Sort = NormalizeSortKey(sort)
	}

	if page, err := strconv.Atoi(values.Get(queryKeyPage)); err == nil && page >= 1 {
		state.Page = page
	}

	state.Search = values.Get(queryKeySearch)

	return state
}

// QueryValues serializes the filter state back into the query representation.
// ParseQuery(QueryValues(s)) yields an equivalent state against the same
// snapshot and bounds.
func (s FilterState) QueryValues() url.Values {
	values := url.Values{}

	if len(s.Categories) > 0 {
		ids := make([]string, len(s.Categories))
		for i, cat := range s.Categories {
			ids[i] = cat.ID.String()
		}
		values.Set(queryKeyCategories, strings.Join(ids, ","))
	}

	values.Set(queryKeyMinPrice, strconv.FormatFloat(s.PriceRange.Min, 'f', -1, 64))
	values.Set(queryKeyMaxPrice, strconv.FormatFloat(s.PriceRange.Max, 'f', -1, 64))
	values.Set(queryKeySort, s.Sort)
	values.Set(queryKeyPage, strconv.Itoa(s.Page))
	if s.Search != "" {
		values.Set(queryKeySearch, s.Search)
	}

	return values
}
