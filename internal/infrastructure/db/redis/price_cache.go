package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

const (
	priceCacheKey = "prices:all"
	priceCacheTTL = 30 * time.Second
)

// PriceCache is a read-through cache for the full price list, backed by
// Redis. The entry is short-lived and deleted on every upsert, so readers
// are never more than priceCacheTTL behind the store.
type PriceCache struct {
	client *redis.Client
}

// NewPriceCache creates a PriceCache wrapping the given Redis client.
func NewPriceCache(client *redis.Client) *PriceCache {
	return &PriceCache{client: client}
}

// Get returns the cached price list, reporting ok=false on a miss.
func (c *PriceCache) Get(ctx context.Context) ([]domain.AssetPrice, bool, error) {
	raw, err := c.client.Get(ctx, priceCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("price cache get: %w", err)
	}

	var prices []domain.AssetPrice
	if err := json.Unmarshal(raw, &prices); err != nil {
		return nil, false, fmt.Errorf("price cache decode: %w", err)
	}
	return prices, true, nil
}

// Set stores the price list with the cache TTL.
func (c *PriceCache) Set(ctx context.Context, prices []domain.AssetPrice) error {
	raw, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("price cache encode: %w", err)
	}
	if err := c.client.Set(ctx, priceCacheKey, raw, priceCacheTTL).Err(); err != nil {
		return fmt.Errorf("price cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list so the next read sees the new price.
func (c *PriceCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, priceCacheKey).Err(); err != nil {
		return fmt.Errorf("price cache invalidate: %w", err)
	}
	return nil
}
