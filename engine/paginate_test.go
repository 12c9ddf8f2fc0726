package engine

import (
	"testing"
	"time"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	products := make([]models.Product, 0, 5)
	for i := 0; i < 5; i++ {
		products = append(products, testProduct("P", float64(i), time.Time{}))
	}

	assert.Len(t, Paginate(products, 1, 2), 2)
	assert.Len(t, Paginate(products, 3, 2), 1)
	assert.Empty(t, Paginate(products, 4, 2))
	assert.Equal(t, 2.0, Paginate(products, 2, 2)[0].Price)
}

func TestPaginate_DefensiveInputs(t *testing.T) {
	products := []models.Product{{}, {}}

	assert.Len(t, Paginate(products, 0, 10), 2)
	assert.Empty(t, Paginate(products, 1, 0))
	assert.Empty(t, Paginate(nil, 1, 10))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 4, TotalPages(42, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestPaginationMeta(t *testing.T) {
	meta := PaginationMeta(2, 12, 42)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 12, meta.Limit)
	assert.Equal(t, 42, meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
}
