package engine

import "github.com/Arvelo-Commerce/arvelo-storefront-backend/models"

// Paginate slices one page out of an already filtered and sorted result.
// Pages are 1-based; a page past the end yields an empty slice.
func Paginate(products []models.Product, page, limit int) []models.Product {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return []models.Product{}
	}

	offset := (page - 1) * limit
	if offset >= len(products) {
		return []models.Product{}
	}

	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	return products[offset:end]
}

// TotalPages computes the page count for a result of the given size.
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}

// PaginationMeta builds the response meta block for one page.
func PaginationMeta(page, limit, total int) *models.Pagination {
	return &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(total, limit),
	}
}
