package sortedstorage

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-lattice/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisSortedIndex manages scored sets in Redis, read highest score first.
type RedisSortedIndex struct {
	client *redis.Client
	locker *redsync.Redsync
}

var _ i.SortedIndex = &RedisSortedIndex{}

// NewRedisSortedIndex initializes a RedisSortedIndex with the provided Redis client.
func NewRedisSortedIndex(client *redis.Client) (*RedisSortedIndex, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	pool := goredis.NewPool(client)
	return &RedisSortedIndex{
		client: client,
		locker: redsync.New(pool),
	}, nil
}

// Add inserts member with the given score, replacing any previous score.
func (rsi *RedisSortedIndex) Add(ctx context.Context, key string, score float64, member string) error {
	return rsi.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
}

// Top returns up to n members with the highest scores, highest first.
func (rsi *RedisSortedIndex) Top(ctx context.Context, key string, n int64) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	return rsi.client.ZRevRange(ctx, key, 0, n-1).Result()
}

// Remove deletes member from the set.
func (rsi *RedisSortedIndex) Remove(ctx context.Context, key string, member string) error {
	return rsi.client.ZRem(ctx, key, member).Err()
}

// Trim drops every member below the keep highest scores.
// Concurrent trims of the same key are serialized with a distributed lock.
func (rsi *RedisSortedIndex) Trim(ctx context.Context, key string, keep int64) error {
	mutex := rsi.locker.NewMutex(key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if keep <= 0 {
		return rsi.client.Del(ctx, key).Err()
	}
	return rsi.client.ZRemRangeByRank(ctx, key, 0, -keep-1).Err()
}

// Count returns the number of members in the set.
func (rsi *RedisSortedIndex) Count(ctx context.Context, key string) (int64, error) {
	return rsi.client.ZCard(ctx, key).Result()
}
