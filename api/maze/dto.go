// Package mazeapi exposes lattice mazes over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/maze"
)

// GenerateRequest asks for a new maze. A zero or missing size selects the default.
type GenerateRequest struct {
	Size int `json:"size" binding:"gte=0"`
}

// MazeSummary describes a stored maze without its cells.
type MazeSummary struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Size      int             `json:"size"`
	Start     maze.Coordinate `json:"start"`
	CreatedAt time.Time       `json:"created_at"`
}

// CellResponse is one cell with its open faces by name.
type CellResponse struct {
	Pos  maze.Coordinate  `json:"pos"`
	Open []maze.Direction `json:"open"`
}

// MazeResponse is a full maze, cells in discovery order.
type MazeResponse struct {
	MazeSummary
	Cells []CellResponse `json:"cells"`
}

// SegmentsResponse carries the line segments to draw for a maze.
type SegmentsResponse struct {
	ID       string         `json:"id"`
	Size     int            `json:"size"`
	Segments []maze.Segment `json:"segments"`
}

// RecentResponse lists recently generated maze IDs, newest first.
type RecentResponse struct {
	IDs []string `json:"ids"`
}

func summaryFromRecord(r *dmn.MazeRecord) MazeSummary {
	return MazeSummary{
		ID:        r.ID.String(),
		OwnerID:   r.OwnerID.String(),
		Size:      r.Size,
		Start:     r.Start,
		CreatedAt: r.CreatedAt,
	}
}

func mazeResponse(m *maze.Maze, r *dmn.MazeRecord) *MazeResponse {
	cells := make([]CellResponse, 0, m.Len())
	for pos, dirs := range m.All() {
		cells = append(cells, CellResponse{Pos: pos, Open: dirs.Directions()})
	}
	return &MazeResponse{
		MazeSummary: summaryFromRecord(r),
		Cells:       cells,
	}
}
