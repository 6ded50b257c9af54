// Package domain holds the records the services persist.
package domain

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-lattice/maze"
	"github.com/google/uuid"
)

// MazeRecord is a stored snapshot of a generated maze.
type MazeRecord struct {
	ID        uuid.UUID       `bson:"_id"`
	OwnerID   uuid.UUID       `bson:"ownerId"`
	Size      int             `bson:"size"`
	Start     maze.Coordinate `bson:"start"`
	Cells     []maze.Cell     `bson:"cells"` // Cells in discovery order
	CreatedAt time.Time       `bson:"createdAt"`
}

// NewMazeRecord snapshots m under a fresh ID.
func NewMazeRecord(owner uuid.UUID, m *maze.Maze) *MazeRecord {
	return &MazeRecord{
		ID:        uuid.New(),
		OwnerID:   owner,
		Size:      m.Size(),
		Start:     m.Start(),
		Cells:     m.Cells(),
		CreatedAt: time.Now().UTC(),
	}
}

// Maze rebuilds and validates the maze held by the record.
func (r *MazeRecord) Maze() (*maze.Maze, error) {
	m, err := maze.FromCells(r.Size, r.Cells)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidRecord, r.ID, err)
	}
	if m.Start() != r.Start {
		return nil, fmt.Errorf("%w %s: start %s does not lead the cell list", ErrInvalidRecord, r.ID, r.Start)
	}
	return m, nil
}
