package engine

import (
	"time"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/google/uuid"
)

// Shared taxonomy fixture:
//
//	shoes
//	├── sneakers
//	│   └── running
//	└── boots
//	apparel
var (
	shoesID    = uuid.MustParse("018f0000-0000-7000-8000-000000000001")
	sneakersID = uuid.MustParse("018f0000-0000-7000-8000-000000000002")
	runningID  = uuid.MustParse("018f0000-0000-7000-8000-000000000003")
	bootsID    = uuid.MustParse("018f0000-0000-7000-8000-000000000004")
	apparelID  = uuid.MustParse("018f0000-0000-7000-8000-000000000005")
)

func testCategories() []models.Category {
	return []models.Category{
		{ID: shoesID, Name: "Shoes", Slug: "shoes", Status: "Active"},
		{ID: sneakersID, Name: "Sneakers", Slug: "sneakers", Status: "Active", ParentID: &shoesID},
		{ID: runningID, Name: "Running", Slug: "running", Status: "Active", ParentID: &sneakersID},
		{ID: bootsID, Name: "Boots", Slug: "boots", Status: "Active", ParentID: &shoesID},
		{ID: apparelID, Name: "Apparel", Slug: "apparel", Status: "Active"},
	}
}

func categoryByID(id uuid.UUID) models.Category {
	for _, cat := range testCategories() {
		if cat.ID == id {
			return cat
		}
	}
	return models.Category{ID: id}
}

func testProduct(name string, price float64, createdAt time.Time, categoryIDs ...uuid.UUID) models.Product {
	return models.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        name,
		Description: name + " description",
		Price:       price,
		CategoryIDs: models.UUIDList(categoryIDs),
		Status:      "Active",
		CreatedAt:   createdAt,
	}
}

func testSnapshot() Snapshot {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return Snapshot{
		Categories: testCategories(),
		Products: []models.Product{
			testProduct("Court Sneaker", 50, base, sneakersID),
			testProduct("Trail Runner", 120, base.Add(24*time.Hour), runningID),
			testProduct("Chelsea Boot", 180, base.Add(48*time.Hour), bootsID),
			testProduct("Wool Sweater", 80, base.Add(72*time.Hour), apparelID),
		},
	}
}

func productNames(products []models.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}
