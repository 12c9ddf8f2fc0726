package product_controller

import (
	"net/http/httptest"
	"testing"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func ginContextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/store/products?"+rawQuery, nil)
	return c
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 24, parseLimit(ginContextWithQuery(t, "limit=24")))
	assert.Equal(t, 12, parseLimit(ginContextWithQuery(t, "")))
	assert.Equal(t, 12, parseLimit(ginContextWithQuery(t, "limit=0")))
	assert.Equal(t, 12, parseLimit(ginContextWithQuery(t, "limit=500")))
	assert.Equal(t, 12, parseLimit(ginContextWithQuery(t, "limit=plenty")))
}

func TestPrimaryImage(t *testing.T) {
	withMedia := models.Product{
		Media: datatypes.JSON(`{"primary":{"url":"https://cdn.example.com/p/1.jpg"},"other":[]}`),
	}
	assert.Equal(t, "https://cdn.example.com/p/1.jpg", primaryImage(withMedia))

	assert.Empty(t, primaryImage(models.Product{}))
	assert.Empty(t, primaryImage(models.Product{Media: datatypes.JSON(`not-json`)}))
}

func TestToStorefrontResponse(t *testing.T) {
	discount := 10.0
	product := models.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        "Chelsea Boot",
		Description: "Suede chelsea boot",
		Price:       200,
		Discount:    &discount,
	}

	responses := toStorefrontResponse([]models.Product{product})
	require.Len(t, responses, 1)

	assert.Equal(t, product.ID.String(), responses[0].ID)
	assert.Equal(t, 200.0, responses[0].Price)
	assert.Equal(t, 180.0, responses[0].FinalPrice)
	assert.Empty(t, responses[0].Image)
}

func TestToStorefrontResponse_Empty(t *testing.T) {
	assert.Empty(t, toStorefrontResponse(nil))
}
