package cache

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/maze"
	"github.com/beka-birhanu/vinom-lattice/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttlSeconds int) (*RedisMazeCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, err := NewRedisMazeCache(client, "", ttlSeconds)
	require.NoError(t, err)
	return c, mr
}

func TestRedisMazeCache(t *testing.T) {
	ctx := context.Background()
	m, err := maze.New(3, maze.WithRand(rand.New(rand.NewSource(8))))
	require.NoError(t, err)

	t.Run("Set then Get", func(t *testing.T) {
		c, mr := newTestCache(t, 60)
		record := dmn.NewMazeRecord(uuid.New(), m)
		require.NoError(t, c.Set(ctx, record))
		assert.True(t, mr.Exists("maze:"+record.ID.String()))

		got, err := c.Get(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, record.Cells, got.Cells)

		rebuilt, err := got.Maze()
		require.NoError(t, err)
		assert.Equal(t, m.String(), rebuilt.String())
	})

	t.Run("Missing entry", func(t *testing.T) {
		c, _ := newTestCache(t, 60)
		_, err := c.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, i.ErrCacheMiss)
	})

	t.Run("Entries expire", func(t *testing.T) {
		c, mr := newTestCache(t, 60)
		record := dmn.NewMazeRecord(uuid.New(), m)
		require.NoError(t, c.Set(ctx, record))

		mr.FastForward(61 * time.Second)
		_, err := c.Get(ctx, record.ID)
		assert.ErrorIs(t, err, i.ErrCacheMiss)
	})

	t.Run("Delete", func(t *testing.T) {
		c, _ := newTestCache(t, 60)
		record := dmn.NewMazeRecord(uuid.New(), m)
		require.NoError(t, c.Set(ctx, record))
		require.NoError(t, c.Delete(ctx, record.ID))

		_, err := c.Get(ctx, record.ID)
		assert.ErrorIs(t, err, i.ErrCacheMiss)
	})

	t.Run("Garbage payload", func(t *testing.T) {
		c, mr := newTestCache(t, 60)
		id := uuid.New()
		require.NoError(t, mr.Set("maze:"+id.String(), "not bson"))

		_, err := c.Get(ctx, id)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, i.ErrCacheMiss)
	})

	t.Run("Invalid construction", func(t *testing.T) {
		_, err := NewRedisMazeCache(nil, "", 60)
		assert.Error(t, err)

		_, err = NewRedisMazeCache(redis.NewClient(&redis.Options{}), "", 0)
		assert.Error(t, err)
	})
}
