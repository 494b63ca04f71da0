package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pos-api/internal/config"
	"pos-api/internal/models"
	"pos-api/pkg/logging"

	"github.com/redis/go-redis/v9"
)

// CacheService caches product-by-code lookups in Redis. A nil client
// disables caching entirely, so the service runs without Redis.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheService creates a new cache service instance
func NewCacheService(client *redis.Client) *CacheService {
	ttl := 5 * time.Minute
	if config.AppConfig != nil && config.AppConfig.CacheTTLSeconds > 0 {
		ttl = time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second
	}
	return &CacheService{client: client, ttl: ttl}
}

// GetProduct gets a cached product by code; the second return reports a hit
func (s *CacheService) GetProduct(ctx context.Context, code string) (*models.Product, bool) {
	if s.client == nil {
		return nil, false
	}

	data, err := s.client.Get(ctx, productKey(code)).Result()
	if err != nil {
		if err != redis.Nil {
			logging.Errorf("Failed to read product cache: %v", err)
		}
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal([]byte(data), &product); err != nil {
		logging.Errorf("Failed to decode cached product %s: %v", code, err)
		return nil, false
	}
	return &product, true
}

// StoreProduct caches a product by code with the configured TTL
func (s *CacheService) StoreProduct(ctx context.Context, product *models.Product) {
	if s.client == nil {
		return
	}

	data, err := json.Marshal(product)
	if err != nil {
		logging.Errorf("Failed to encode product %s for cache: %v", product.Code, err)
		return
	}
	if err := s.client.Set(ctx, productKey(product.Code), data, s.ttl).Err(); err != nil {
		// Cache misses are tolerable; the database remains authoritative
		logging.Errorf("Failed to store product cache: %v", err)
	}
}

func productKey(code string) string {
	return fmt.Sprintf("product:code:%s", code)
}
