package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/maze"
	"github.com/google/uuid"
)

// MazeService generates, stores and serves lattice mazes.
type MazeService interface {
	// Generate builds a new maze of the given edge length for owner and stores it.
	// A size of zero selects the default size.
	Generate(ctx context.Context, owner uuid.UUID, size int) (*dmn.MazeRecord, error)

	// ByID returns a stored maze together with its record.
	ByID(ctx context.Context, id uuid.UUID) (*maze.Maze, *dmn.MazeRecord, error)

	// Recent lists the IDs of the most recently generated mazes, newest first.
	Recent(ctx context.Context, limit int) ([]uuid.UUID, error)

	// Delete removes a maze. Only its owner may delete it.
	Delete(ctx context.Context, requester, id uuid.UUID) error
}

// Logger is the logging surface services depend on.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
