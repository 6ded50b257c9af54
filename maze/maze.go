/*
Package maze generates perfect mazes over a cubic lattice.

A maze of size N covers every coordinate of the N×N×N lattice. Each cell records
the faces that open onto a neighbour; passages are always symmetric and the
passage graph is a spanning tree, so there is exactly one route between any two
cells.

Generation grows the maze from a random seed cell. On every step a known cell is
drawn uniformly at random, then one of the six directions is drawn uniformly at
random; the proposal is carved only when the neighbour lies inside the lattice
and has not been reached yet. Cells are kept in a Store that offers constant-time
membership tests and uniform random draws.
*/
package maze

import (
	"errors"
	"fmt"
	"iter"
)

const (
	preallocLimit = 1 << 20
)

var (
	ErrInvalidSize    = errors.New("invalid maze size")
	ErrIterationLimit = errors.New("maze generation exceeded iteration limit")
)

// Maze is a generated lattice maze. It is never modified after construction.
type Maze struct {
	size  int    // Edge length of the lattice
	cells *Store // Open directions of every cell, in discovery order
}

// Cell is a flattened view of one maze cell.
type Cell struct {
	Pos  Coordinate   `json:"pos" bson:"pos"`
	Open DirectionSet `json:"open" bson:"open"`
}

// Option configures a generation run.
type Option func(*builder)

// WithRand sets the randomness used for seed, cell and direction selection.
func WithRand(rnd RandSource) Option {
	return func(b *builder) {
		if rnd != nil {
			b.rnd = rnd
		}
	}
}

// WithMaxIterations aborts generation with ErrIterationLimit after n proposals.
// Zero or a negative n means no limit.
func WithMaxIterations(n int) Option {
	return func(b *builder) {
		b.maxIterations = n
	}
}

type builder struct {
	rnd           RandSource
	maxIterations int
}

// New generates a maze over a size×size×size lattice.
func New(size int, opts ...Option) (*Maze, error) {
	if size <= 0 || size >= MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	b := &builder{rnd: globalRand{}}
	for _, opt := range opts {
		opt(b)
	}
	return b.build(size)
}

// build runs randomized frontier growth until every lattice cell is known.
func (b *builder) build(size int) (*Maze, error) {
	total := size * size * size
	cells := NewStore(min(total, preallocLimit))

	seed := Coordinate{X: b.rnd.Intn(size), Y: b.rnd.Intn(size), Z: b.rnd.Intn(size)}
	cells.insert(seed, 0)

	for iteration := 0; cells.Len() < total; iteration++ {
		if b.maxIterations > 0 && iteration >= b.maxIterations {
			return nil, fmt.Errorf("%w: %d cells of %d after %d proposals", ErrIterationLimit, cells.Len(), total, iteration)
		}

		current, _ := cells.RandomEntry(b.rnd)
		dirs, _ := cells.Get(current)
		d := Direction(b.rnd.Intn(NumDirections))

		if dirs.Has(d) {
			continue
		}
		neighbor := current.Neighbor(d)
		if !neighbor.InBounds(size) || cells.Contains(neighbor) {
			continue
		}

		cells.insert(current, dirs.With(d))
		cells.insert(neighbor, NewDirectionSet(d.Opposite()))
	}

	return &Maze{size: size, cells: cells}, nil
}

// Size returns the edge length of the lattice.
func (m *Maze) Size() int {
	return m.size
}

// Len returns the number of cells.
func (m *Maze) Len() int {
	return m.cells.Len()
}

// Start returns the seed cell the maze was grown from.
func (m *Maze) Start() Coordinate {
	for pos := range m.cells.Keys() {
		return pos
	}
	return Coordinate{}
}

// Directions returns the open faces of the cell at pos.
func (m *Maze) Directions(pos Coordinate) (DirectionSet, bool) {
	return m.cells.Get(pos)
}

// Keys yields every cell position in discovery order.
func (m *Maze) Keys() iter.Seq[Coordinate] {
	return m.cells.Keys()
}

// All yields every cell with its open faces in discovery order.
func (m *Maze) All() iter.Seq2[Coordinate, DirectionSet] {
	return m.cells.All()
}

// Cells returns a snapshot of all cells in discovery order.
func (m *Maze) Cells() []Cell {
	result := make([]Cell, 0, m.cells.Len())
	for pos, dirs := range m.cells.All() {
		result = append(result, Cell{Pos: pos, Open: dirs})
	}
	return result
}

// Edges returns the number of passages.
func (m *Maze) Edges() int {
	sum := 0
	for _, dirs := range m.cells.All() {
		sum += dirs.Len()
	}
	return sum / 2
}

// CanMove reports whether a passage leads from `from` in direction d.
func (m *Maze) CanMove(from Coordinate, d Direction) bool {
	if !d.Valid() {
		return false
	}
	dirs, ok := m.cells.Get(from)
	if !ok || !dirs.Has(d) {
		return false
	}
	back, ok := m.cells.Get(from.Neighbor(d))
	return ok && back.Has(d.Opposite())
}

// FromCells rebuilds a maze from a cell list and validates it.
func FromCells(size int, cells []Cell) (*Maze, error) {
	if size <= 0 || size >= MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	store := NewStore(min(len(cells), preallocLimit))
	for _, c := range cells {
		if !c.Pos.InBounds(size) {
			return nil, fmt.Errorf("%w: cell %s", ErrOutOfBounds, c.Pos)
		}
		if store.Contains(c.Pos) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCell, c.Pos)
		}
		store.insert(c.Pos, c.Open)
	}

	m := &Maze{size: size, cells: store}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
