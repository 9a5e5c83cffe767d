package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klassifikator/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// Bucket names group cache entries by entity type. Mutations invalidate a
// whole bucket rather than individual keys; the per-bucket TTL bounds
// staleness either way.
const (
	BucketLanding      = "landing"
	BucketOrganization = "organization"
	BucketContent      = "content"
	BucketProduct      = "product"
	BucketPromotion    = "promotion"
	BucketTemplate     = "template"
	BucketMedia        = "media"
)

// Store is a Redis-backed JSON cache with per-entity-type TTLs.
// Suitable for sharing between the service binaries.
type Store struct {
	client     *redis.Client
	keyPrefix  string
	ttls       map[string]time.Duration
	defaultTTL time.Duration
}

// NewStore creates a Store and verifies the connection
func NewStore(redisCfg *config.RedisConfig, cacheCfg *config.CacheConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisCfg.Host, redisCfg.Port),
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewStoreWithClient(client, cacheCfg), nil
}

// NewStoreWithClient creates a Store with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewStoreWithClient(client *redis.Client, cacheCfg *config.CacheConfig) *Store {
	return &Store{
		client:    client,
		keyPrefix: "cache:",
		ttls: map[string]time.Duration{
			BucketContent:  cacheCfg.ContentTTL,
			BucketLanding:  cacheCfg.LandingTTL,
			BucketTemplate: cacheCfg.TemplateTTL,
			BucketProduct:  cacheCfg.ProductTTL,
		},
		defaultTTL: cacheCfg.DefaultTTL,
	}
}

// TTL returns the expiration applied to entries of the given bucket
func (s *Store) TTL(bucket string) time.Duration {
	if ttl, ok := s.ttls[bucket]; ok && ttl > 0 {
		return ttl
	}
	return s.defaultTTL
}

func (s *Store) key(bucket, key string) string {
	return s.keyPrefix + bucket + ":" + key
}

// Get reads a cached JSON value into dest.
// Returns false when the key is absent; a decode failure is treated as a miss.
func (s *Store) Get(ctx context.Context, bucket, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, s.key(bucket, key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Set writes a JSON value with the bucket's TTL
func (s *Store) Set(ctx context.Context, bucket, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := s.client.Set(ctx, s.key(bucket, key), data, s.TTL(bucket)).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Delete removes a single cache entry
func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	if err := s.client.Del(ctx, s.key(bucket, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// InvalidateBucket removes every entry of an entity type.
// Uses SCAN rather than KEYS to avoid blocking Redis on large keyspaces.
func (s *Store) InvalidateBucket(ctx context.Context, bucket string) error {
	pattern := s.keyPrefix + bucket + ":*"
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 500 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to invalidate cache bucket %s: %w", bucket, err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache bucket %s: %w", bucket, err)
	}
	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate cache bucket %s: %w", bucket, err)
		}
	}
	return nil
}

// Close closes the Redis client
func (s *Store) Close() error {
	return s.client.Close()
}
