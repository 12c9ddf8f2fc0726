package services

import (
	"context"
	"log"

	catalog_cache "github.com/Arvelo-Commerce/arvelo-storefront-backend/cache"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/config"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/engine"
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"gorm.io/gorm"
)

// LoadSnapshot returns the active catalog snapshot the filter engine runs
// over, serving from the in-process cache when fresh. The snapshot is treated
// as immutable for the duration of one recomputation pass.
func LoadSnapshot(ctx context.Context) (engine.Snapshot, error) {
	if snapshot, ok := catalog_cache.GetSnapshot(); ok {
		return snapshot, nil
	}

	snapshot, err := fetchSnapshot(ctx, config.CatalogGorm)
	if err != nil {
		return engine.Snapshot{}, err
	}

	catalog_cache.SetSnapshot(snapshot)
	log.Printf("[catalog] snapshot refreshed: %d products, %d categories",
		len(snapshot.Products), len(snapshot.Categories))
	return snapshot, nil
}

// RefreshSnapshot drops the cache and reloads from the database. Mutation
// paths call this after a catalog write.
func RefreshSnapshot(ctx context.Context) (engine.Snapshot, error) {
	catalog_cache.Invalidate()
	return LoadSnapshot(ctx)
}

func fetchSnapshot(ctx context.Context, db *gorm.DB) (engine.Snapshot, error) {
	var categories []models.Category
	if err := db.WithContext(ctx).
		Where("status = ?", "Active").
		Order("display_order ASC, name ASC").
		Find(&categories).Error; err != nil {
		return engine.Snapshot{}, err
	}

	var products []models.Product
	if err := db.WithContext(ctx).
		Where("status = ?", "Active").
		Find(&products).Error; err != nil {
		return engine.Snapshot{}, err
	}

	return engine.Snapshot{Products: products, Categories: categories}, nil
}
