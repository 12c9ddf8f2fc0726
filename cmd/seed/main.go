package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/config"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo catalog (category tree + products)
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ARVELO STOREFRONT - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.CatalogGorm.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	categories := seedCategories()
	products := seedProducts(categories)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Categories: %d\n", len(categories))
	fmt.Printf("Products:   %d\n", len(products))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse GET /api/v1/store/products")
	fmt.Println("3. Filter with ?categories=<id>&minPrice=20&maxPrice=200&sort=price-low")
	fmt.Println()
}

// seedCategories creates a small two-level taxonomy keyed by slug.
func seedCategories() map[string]models.Category {
	specs := []struct {
		name, slug, parentSlug string
		order                  int
	}{
		{"Shoes", "shoes", "", 1},
		{"Sneakers", "sneakers", "shoes", 1},
		{"Boots", "boots", "shoes", 2},
		{"Apparel", "apparel", "", 2},
		{"Sweaters", "sweaters", "apparel", 1},
		{"Home", "home", "", 3},
		{"Lighting", "lighting", "home", 1},
	}

	created := make(map[string]models.Category, len(specs))
	for _, spec := range specs {
		category := models.Category{
			ID:           uuid.Must(uuid.NewV7()),
			Name:         spec.name,
			Slug:         spec.slug,
			Status:       "Active",
			DisplayOrder: spec.order,
		}
		if spec.parentSlug != "" {
			parent := created[spec.parentSlug]
			category.ParentID = &parent.ID
		}

		if err := config.CatalogGorm.Create(&category).Error; err != nil {
			log.Fatalf("Failed to create category %q: %v", spec.name, err)
		}
		created[spec.slug] = category
		log.Printf("✓ Category created: %s", spec.name)
	}

	return created
}

func seedProducts(categories map[string]models.Category) []models.Product {
	discount := 15.0
	specs := []struct {
		name, description string
		price             float64
		discount          *float64
		categorySlugs     []string
		daysAgo           int
	}{
		{"Court Sneaker", "Low-top leather sneaker", 89.90, nil, []string{"sneakers"}, 30},
		{"Trail Runner", "Cushioned trail running shoe", 129.00, nil, []string{"sneakers"}, 10},
		{"Chelsea Boot", "Suede chelsea boot", 179.50, &discount, []string{"boots"}, 20},
		{"Wool Sweater", "Merino crew-neck sweater", 85.00, nil, []string{"sweaters"}, 5},
		{"Red Lamp", "Ceramic table lamp with linen shade", 64.00, nil, []string{"lighting"}, 2},
		{"Desk Lamp", "Adjustable brass desk lamp", 48.00, nil, []string{"lighting"}, 1},
	}

	created := make([]models.Product, 0, len(specs))
	for _, spec := range specs {
		categoryIDs := make(models.UUIDList, 0, len(spec.categorySlugs))
		for _, slug := range spec.categorySlugs {
			categoryIDs = append(categoryIDs, categories[slug].ID)
		}

		product := models.Product{
			ID:          uuid.Must(uuid.NewV7()),
			Name:        spec.name,
			Description: spec.description,
			Price:       spec.price,
			Discount:    spec.discount,
			CategoryIDs: categoryIDs,
			Status:      "Active",
			CreatedAt:   time.Now().AddDate(0, 0, -spec.daysAgo),
		}

		if err := config.CatalogGorm.Create(&product).Error; err != nil {
			log.Fatalf("Failed to create product %q: %v", spec.name, err)
		}
		created = append(created, product)
		log.Printf("✓ Product created: %s", spec.name)
	}

	return created
}
