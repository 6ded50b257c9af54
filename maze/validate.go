package maze

import (
	"errors"
	"fmt"
)

var (
	ErrCellCount     = errors.New("maze does not cover the lattice")
	ErrDuplicateCell = errors.New("cell listed more than once")
	ErrOutOfBounds   = errors.New("passage leaves the lattice")
	ErrAsymmetric    = errors.New("passage is open on one side only")
	ErrCycle         = errors.New("passages form a cycle")
	ErrDisconnected  = errors.New("maze is not connected")
	ErrInvalidEdge   = errors.New("invalid edge")
)

// Edge is a passage leaving From through the face Dir.
type Edge struct {
	From Coordinate
	Dir  Direction
}

// FromEdges builds a size×size×size maze holding exactly the given passages
// and validates it. Cells not touched by any edge are present with no open faces.
func FromEdges(size int, edges []Edge) (*Maze, error) {
	if size <= 0 || size >= MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	store := NewStore(min(size*size*size, preallocLimit))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				store.insert(Coordinate{X: x, Y: y, Z: z}, 0)
			}
		}
	}

	for _, e := range edges {
		if !e.Dir.Valid() {
			return nil, fmt.Errorf("%w: direction %d", ErrInvalidEdge, uint8(e.Dir))
		}
		to := e.From.Neighbor(e.Dir)
		if !e.From.InBounds(size) || !to.InBounds(size) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrOutOfBounds, e.From, to)
		}
		from, _ := store.Get(e.From)
		if from.Has(e.Dir) {
			return nil, fmt.Errorf("%w: %s %s listed twice", ErrCycle, e.From, e.Dir)
		}
		back, _ := store.Get(to)
		store.insert(e.From, from.With(e.Dir))
		store.insert(to, back.With(e.Dir.Opposite()))
	}

	m := &Maze{size: size, cells: store}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that the maze is a perfect maze over its lattice: every
// cell is present, passages stay inside the lattice and are symmetric, and
// the passage graph is a single tree.
func (m *Maze) Validate() error {
	total := m.size * m.size * m.size
	if m.cells.Len() != total {
		return fmt.Errorf("%w: %d cells, want %d", ErrCellCount, m.cells.Len(), total)
	}

	edges := 0
	for pos, dirs := range m.cells.All() {
		if !pos.InBounds(m.size) {
			return fmt.Errorf("%w: cell %s", ErrOutOfBounds, pos)
		}
		if !dirs.Valid() {
			return fmt.Errorf("%w: cell %s has direction bits %08b", ErrInvalidEdge, pos, uint8(dirs))
		}
		for _, d := range dirs.Directions() {
			next := pos.Neighbor(d)
			if !next.InBounds(m.size) {
				return fmt.Errorf("%w: %s %s", ErrOutOfBounds, pos, d)
			}
			back, ok := m.cells.Get(next)
			if !ok || !back.Has(d.Opposite()) {
				return fmt.Errorf("%w: %s %s", ErrAsymmetric, pos, d)
			}
		}
		edges += dirs.Len()
	}
	edges /= 2

	visited, err := m.walk(m.Start())
	if err != nil {
		return err
	}
	if visited != total {
		return fmt.Errorf("%w: reached %d of %d cells", ErrDisconnected, visited, total)
	}
	if edges != total-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrCycle, edges, total)
	}
	return nil
}

type walkItem struct {
	pos    Coordinate
	parent Coordinate
	root   bool
}

// walk runs a breadth-first traversal along open passages from start and
// returns the number of cells reached. Reaching a visited cell other than the
// one just left means the passages contain a cycle.
func (m *Maze) walk(start Coordinate) (int, error) {
	visited := NewStore(min(m.cells.Len(), preallocLimit))
	queue := []walkItem{{pos: start, root: true}}
	visited.insert(start, 0)

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		dirs, _ := m.cells.Get(item.pos)
		for _, d := range dirs.Directions() {
			next := item.pos.Neighbor(d)
			if !item.root && next == item.parent {
				continue
			}
			if visited.Contains(next) {
				return visited.Len(), fmt.Errorf("%w: %s reached twice", ErrCycle, next)
			}
			visited.insert(next, 0)
			queue = append(queue, walkItem{pos: next, parent: item.pos})
		}
	}
	return visited.Len(), nil
}
