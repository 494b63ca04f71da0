package services

import (
	"context"
	"errors"
	"fmt"

	"pos-api/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CatalogService provides read-only product lookups. Catalog writes belong
// to an external management process.
type CatalogService struct {
	db    *gorm.DB
	cache *CacheService
}

// NewCatalogService creates a new catalog service over the given connection
// pool and optional Redis client
func NewCatalogService(db *gorm.DB, redisClient *redis.Client) *CatalogService {
	return &CatalogService{
		db:    db,
		cache: NewCacheService(redisClient),
	}
}

// GetProductByCode gets a product by its business code. Duplicate codes
// resolve to the lowest product ID.
func (s *CatalogService) GetProductByCode(ctx context.Context, code string) (*models.Product, error) {
	if product, ok := s.cache.GetProduct(ctx, code); ok {
		return product, nil
	}

	var product models.Product
	result := s.db.WithContext(ctx).
		Where("\"CODE\" = ?", code).
		Order("\"PRD_ID\"").
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to query product by code: %w", result.Error)
	}

	s.cache.StoreProduct(ctx, &product)
	return &product, nil
}

// GetProductByID gets a product by primary key
func (s *CatalogService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return lookupProductByID(s.db.WithContext(ctx), id)
}

// lookupProductByID runs the by-ID lookup on any handle, so the purchase
// unit of work can resolve products inside its own transaction.
func lookupProductByID(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	result := db.First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &ProductNotFoundError{ProductID: id}
		}
		return nil, fmt.Errorf("failed to query product by id: %w", result.Error)
	}
	return &product, nil
}
