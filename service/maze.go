package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/maze"
	"github.com/beka-birhanu/vinom-lattice/service/i"
	"github.com/google/uuid"
)

const (
	recentMazesKey = "mazes:recent"

	defaultMaxSize     = 32
	defaultSize        = 4
	defaultRecentLimit = 20
)

// MazeConfig holds the dependencies and limits of a MazeService.
type MazeConfig struct {
	Repo        i.MazeRepo
	Cache       i.MazeCache
	Index       i.SortedIndex
	Logger      i.Logger
	MaxSize     int           // Largest edge length a caller may request
	DefaultSize int           // Edge length used when the caller passes zero
	RecentLimit int           // Number of IDs kept in the recent index
	MazeOptions []maze.Option // Options applied to every generation run
}

// MazeService generates mazes and keeps them in the repository, the cache
// and the recent index.
type MazeService struct {
	repo        i.MazeRepo
	cache       i.MazeCache
	index       i.SortedIndex
	logger      i.Logger
	maxSize     int
	defaultSize int
	recentLimit int
	mazeOptions []maze.Option
}

// NewMazeService creates a MazeService. Non-positive limits fall back to defaults.
func NewMazeService(c *MazeConfig) (*MazeService, error) {
	if c == nil || c.Repo == nil || c.Cache == nil || c.Index == nil || c.Logger == nil {
		return nil, errors.New("maze service requires a repo, cache, index and logger")
	}

	s := &MazeService{
		repo:        c.Repo,
		cache:       c.Cache,
		index:       c.Index,
		logger:      c.Logger,
		maxSize:     c.MaxSize,
		defaultSize: c.DefaultSize,
		recentLimit: c.RecentLimit,
		mazeOptions: c.MazeOptions,
	}
	if s.maxSize <= 0 {
		s.maxSize = defaultMaxSize
	}
	if s.defaultSize <= 0 {
		s.defaultSize = min(defaultSize, s.maxSize)
	}
	if s.defaultSize > s.maxSize {
		return nil, fmt.Errorf("default size %d exceeds max size %d", s.defaultSize, s.maxSize)
	}
	if s.recentLimit <= 0 {
		s.recentLimit = defaultRecentLimit
	}
	return s, nil
}

// Generate implements i.MazeService.
func (s *MazeService) Generate(ctx context.Context, owner uuid.UUID, size int) (*dmn.MazeRecord, error) {
	if size == 0 {
		size = s.defaultSize
	}
	if size < 0 || size > s.maxSize {
		return nil, fmt.Errorf("%w: %d is outside [1, %d]", maze.ErrInvalidSize, size, s.maxSize)
	}

	started := time.Now()
	m, err := maze.New(size, s.mazeOptions...)
	if err != nil {
		s.logger.Error(fmt.Sprintf("generating maze of size %d: %s", size, err))
		return nil, err
	}
	if err := m.Validate(); err != nil {
		s.logger.Error(fmt.Sprintf("generated maze of size %d is not perfect: %s", size, err))
		return nil, err
	}

	record := dmn.NewMazeRecord(owner, m)
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("saving maze %s: %s", record.ID, err))
		return nil, fmt.Errorf("saving maze: %w", err)
	}

	if err := s.cache.Set(ctx, record); err != nil {
		s.logger.Warning(fmt.Sprintf("caching maze %s: %s", record.ID, err))
	}
	s.pushRecent(ctx, record)

	s.logger.Info(fmt.Sprintf("generated maze %s of size %d for %s in %s", record.ID, size, owner, time.Since(started)))
	return record, nil
}

func (s *MazeService) pushRecent(ctx context.Context, record *dmn.MazeRecord) {
	score := float64(record.CreatedAt.UnixMilli())
	if err := s.index.Add(ctx, recentMazesKey, score, record.ID.String()); err != nil {
		s.logger.Warning(fmt.Sprintf("indexing maze %s: %s", record.ID, err))
		return
	}
	if err := s.index.Trim(ctx, recentMazesKey, int64(s.recentLimit)); err != nil {
		s.logger.Warning(fmt.Sprintf("trimming recent mazes: %s", err))
	}
}

// ByID implements i.MazeService.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*maze.Maze, *dmn.MazeRecord, error) {
	record, err := s.cache.Get(ctx, id)
	switch {
	case err == nil:
		m, err := record.Maze()
		if err == nil {
			return m, record, nil
		}
		s.logger.Warning(fmt.Sprintf("dropping cached maze %s: %s", id, err))
		if err := s.cache.Delete(ctx, id); err != nil {
			s.logger.Warning(fmt.Sprintf("evicting cached maze %s: %s", id, err))
		}
	case !errors.Is(err, i.ErrCacheMiss):
		s.logger.Warning(fmt.Sprintf("reading cached maze %s: %s", id, err))
	}

	record, err = s.repo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	m, err := record.Maze()
	if err != nil {
		s.logger.Error(err.Error())
		return nil, nil, err
	}

	if err := s.cache.Set(ctx, record); err != nil {
		s.logger.Warning(fmt.Sprintf("caching maze %s: %s", id, err))
	}
	return m, record, nil
}

// Recent implements i.MazeService. Limits outside [1, RecentLimit] are clamped to RecentLimit.
func (s *MazeService) Recent(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if limit <= 0 || limit > s.recentLimit {
		limit = s.recentLimit
	}

	members, err := s.index.Top(ctx, recentMazesKey, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("listing recent mazes: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("skipping malformed recent maze id %q", member))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete implements i.MazeService.
func (s *MazeService) Delete(ctx context.Context, requester, id uuid.UUID) error {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if record.OwnerID != requester {
		return dmn.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warning(fmt.Sprintf("evicting maze %s: %s", id, err))
	}
	if err := s.index.Remove(ctx, recentMazesKey, id.String()); err != nil {
		s.logger.Warning(fmt.Sprintf("unindexing maze %s: %s", id, err))
	}

	s.logger.Info(fmt.Sprintf("deleted maze %s", id))
	return nil
}
