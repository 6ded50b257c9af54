package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/google/uuid"
)

// ErrCacheMiss is returned by MazeCache.Get when the maze is not cached.
var ErrCacheMiss = errors.New("cache miss")

// MazeCache keeps recently used maze records close to the API.
type MazeCache interface {
	Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
	Set(ctx context.Context, record *dmn.MazeRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SortedIndex is a scored set of members, read back highest score first.
type SortedIndex interface {
	// Add inserts or rescores a member.
	Add(ctx context.Context, key string, score float64, member string) error

	// Top returns up to n members with the highest scores.
	Top(ctx context.Context, key string, n int64) ([]string, error)

	// Remove deletes a member.
	Remove(ctx context.Context, key string, member string) error

	// Trim keeps only the keep highest scored members.
	Trim(ctx context.Context, key string, keep int64) error

	// Count returns the number of members.
	Count(ctx context.Context, key string) (int64, error)
}
