package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDeduplicator tracks seen postings in Redis so repeated batch runs
// over overlapping source exports skip records they already ingested.
type RedisDeduplicator struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

// NewRedisDeduplicator creates a Redis-backed deduplicator.
func NewRedisDeduplicator(client *redis.Client, prefix string, defaultTTL time.Duration) *RedisDeduplicator {
	if prefix == "" {
		prefix = "posting:seen"
	}
	if defaultTTL == 0 {
		defaultTTL = 24 * time.Hour * 30 // 30 days default
	}
	return &RedisDeduplicator{
		client:     client,
		prefix:     prefix,
		defaultTTL: defaultTTL,
	}
}

func (d *RedisDeduplicator) Seen(ctx context.Context, postingID string) (bool, error) {
	exists, err := d.client.Exists(ctx, d.makeKey(postingID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return exists > 0, nil
}

func (d *RedisDeduplicator) Mark(ctx context.Context, postingID string) error {
	err := d.client.Set(ctx, d.makeKey(postingID), time.Now().Unix(), d.defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// makeKey hashes the posting ID so keys stay short and uniform regardless
// of how long the source IDs are.
func (d *RedisDeduplicator) makeKey(postingID string) string {
	h := sha256.Sum256([]byte(postingID))
	return fmt.Sprintf("%s:%s", d.prefix, hex.EncodeToString(h[:16]))
}
