package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dev-devfero/talaash/pkg/models"
	"github.com/redis/go-redis/v9"
)

// listingsKey holds the serialized job-listing payload. One key is enough:
// the listing surface has a single, unparameterized query.
const listingsKey = "talaash:jobs:all"

// Cache provides Redis-backed caching for the job-listing payload.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at the given URL and returns a Cache.
// URL format: redis://localhost:6379
func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Get retrieves the cached listing payload. Returns the postings and true if
// a valid cache entry exists, or nil and false otherwise.
func (c *Cache) Get(ctx context.Context) ([]models.JobPosting, bool) {
	data, err := c.client.Get(ctx, listingsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var jobs []models.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, false
	}

	return jobs, true
}

// Set stores the listing payload with the configured TTL.
func (c *Cache) Set(ctx context.Context, jobs []models.JobPosting) error {
	data, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("cache: marshal error: %w", err)
	}

	return c.client.Set(ctx, listingsKey, data, c.ttl).Err()
}

// Invalidate drops the cached payload. Called after a successful posting
// insert so readers never see a listing missing the new record past the TTL.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listingsKey).Err()
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
