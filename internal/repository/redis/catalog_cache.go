package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cardPilot/domain"

	"github.com/redis/go-redis/v9"
)

const catalogSnapshotKey = "catalog:snapshot"

// CatalogCache keeps the assembled catalog snapshot in Redis so
// repeated recommendation calls skip the per-card promotion queries.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns (nil, nil) on a cache miss.
func (c *CatalogCache) Get(ctx context.Context) (*domain.CatalogSnapshot, error) {
	val, err := c.client.Get(ctx, catalogSnapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog snapshot from Redis: %w", err)
	}

	var snapshot domain.CatalogSnapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}

	return &snapshot, nil
}

func (c *CatalogCache) Set(ctx context.Context, snapshot domain.CatalogSnapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}

	if err := c.client.Set(ctx, catalogSnapshotKey, jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store catalog snapshot in Redis: %w", err)
	}

	return nil
}

// Invalidate drops the cached snapshot, forcing the next load to hit
// the database. Used after seeding.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogSnapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog snapshot: %w", err)
	}

	return nil
}
