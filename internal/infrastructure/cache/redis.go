package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/example/products-slider/internal/infrastructure/store"
	"github.com/example/products-slider/internal/query"
)

// KeyPrefix namespaces every cached query result.
const KeyPrefix = "slider:query:"

const scanBatch = 100

// CachedProductQuery serves repeated descriptors from Redis. Any cache failure
// falls through to the wrapped engine.
type CachedProductQuery struct {
	next store.ProductQueryInterface
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedProductQuery(next store.ProductQueryInterface, rdb *redis.Client, ttl time.Duration) *CachedProductQuery {
	return &CachedProductQuery{next: next, rdb: rdb, ttl: ttl}
}

// Key returns the cache key for d: the prefix plus the SHA-256 of its JSON form.
func Key(d *query.Descriptor) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return KeyPrefix + hex.EncodeToString(sum[:]), nil
}

func (c *CachedProductQuery) Execute(ctx context.Context, d *query.Descriptor) ([]int, error) {
	if c.rdb == nil || strings.EqualFold(d.OrderBy, "rand") {
		return c.next.Execute(ctx, d)
	}

	key, err := Key(d)
	if err != nil {
		return c.next.Execute(ctx, d)
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var ids []int
		if err := json.Unmarshal(data, &ids); err == nil {
			return ids, nil
		}
		log.Printf("[Cache] Discarding corrupt entry %s", key)
	case !errors.Is(err, redis.Nil):
		log.Printf("[Cache] Get %s failed: %v", key, err)
	}

	ids, err := c.next.Execute(ctx, d)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ids)
	if err == nil {
		err = c.rdb.Set(ctx, key, payload, c.ttl).Err()
	}
	if err != nil {
		log.Printf("[Cache] Set %s failed: %v", key, err)
	}
	return ids, nil
}

// Invalidate deletes every cached query result.
func (c *CachedProductQuery) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}

	iter := c.rdb.Scan(ctx, 0, KeyPrefix+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	deleted := 0
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("delete cached queries: %w", err)
			}
			deleted += len(batch)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cached queries: %w", err)
	}
	if len(batch) > 0 {
		if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("delete cached queries: %w", err)
		}
		deleted += len(batch)
	}

	log.Printf("[Cache] Invalidated %d entries", deleted)
	return nil
}

// ConnectRedis parses a redis:// URL and pings the server.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}
