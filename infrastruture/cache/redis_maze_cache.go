// Package cache keeps maze records in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const defaultKeyPrefix = "maze"

// RedisMazeCache stores BSON-encoded maze records under "<prefix>:<id>" with a TTL.
type RedisMazeCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ i.MazeCache = &RedisMazeCache{}

// NewRedisMazeCache creates a cache whose entries expire after ttlSeconds.
func NewRedisMazeCache(client *redis.Client, prefix string, ttlSeconds int) (*RedisMazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %d", ttlSeconds)
	}
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisMazeCache{
		client: client,
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (c *RedisMazeCache) key(id uuid.UUID) string {
	return c.prefix + ":" + id.String()
}

// Get implements i.MazeCache. A missing entry yields i.ErrCacheMiss.
func (c *RedisMazeCache) Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrCacheMiss
		}
		return nil, err
	}

	var record dmn.MazeRecord
	if err := bson.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decoding cached maze %s: %w", id, err)
	}
	return &record, nil
}

// Set implements i.MazeCache.
func (c *RedisMazeCache) Set(ctx context.Context, record *dmn.MazeRecord) error {
	raw, err := bson.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding maze %s: %w", record.ID, err)
	}
	return c.client.Set(ctx, c.key(record.ID), raw, c.ttl).Err()
}

// Delete implements i.MazeCache.
func (c *RedisMazeCache) Delete(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
