package storefront_routes

import (
	store_category "github.com/Arvelo-Commerce/arvelo-storefront-backend/controllers/storefront/category_controller"
	store_filter "github.com/Arvelo-Commerce/arvelo-storefront-backend/controllers/storefront/filter_controller"
	store_product "github.com/Arvelo-Commerce/arvelo-storefront-backend/controllers/storefront/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)        // List with filters
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product
	}

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories)       // Tree with counts
		categories.GET("/:id", store_category.GetCategoryByID) // Single category
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}
