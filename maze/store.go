package maze

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
)

// ErrOutOfRange is returned when a coordinate cannot be encoded as a store key.
var ErrOutOfRange = errors.New("coordinate out of range")

// RandSource is the source of randomness used for selection. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

type entry struct {
	pos  Coordinate
	dirs DirectionSet
}

// Store maps coordinates to their open directions.
//
// Keys are compared by value: each coordinate is packed into an integer
// before indexing. Entries are kept in a slice in first-insertion order,
// so uniform random selection and ordered traversal need no copying.
type Store struct {
	index   map[uint64]int
	entries []entry
}

// NewStore returns an empty store with room for capacity entries.
func NewStore(capacity int) *Store {
	return &Store{
		index:   make(map[uint64]int, capacity),
		entries: make([]entry, 0, capacity),
	}
}

// Contains reports whether pos has an entry.
func (s *Store) Contains(pos Coordinate) bool {
	if !encodable(pos) {
		return false
	}
	_, ok := s.index[pos.key()]
	return ok
}

// Get returns the directions stored for pos.
func (s *Store) Get(pos Coordinate) (DirectionSet, bool) {
	if !encodable(pos) {
		return 0, false
	}
	i, ok := s.index[pos.key()]
	if !ok {
		return 0, false
	}
	return s.entries[i].dirs, true
}

// Insert adds an entry for pos or overwrites its directions.
// An overwritten entry keeps its original position in the insertion order.
func (s *Store) Insert(pos Coordinate, dirs DirectionSet) error {
	if !encodable(pos) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, pos)
	}
	s.insert(pos, dirs)
	return nil
}

func (s *Store) insert(pos Coordinate, dirs DirectionSet) {
	k := pos.key()
	if i, ok := s.index[k]; ok {
		s.entries[i].dirs = dirs
		return
	}
	s.index[k] = len(s.entries)
	s.entries = append(s.entries, entry{pos: pos, dirs: dirs})
}

// Len returns the number of distinct coordinates stored.
func (s *Store) Len() int {
	return len(s.entries)
}

// RandomEntry returns a coordinate chosen uniformly among the stored ones.
// It returns false when the store is empty.
func (s *Store) RandomEntry(rnd RandSource) (Coordinate, bool) {
	if len(s.entries) == 0 {
		return Coordinate{}, false
	}
	return s.entries[rnd.Intn(len(s.entries))].pos, true
}

// Keys yields the stored coordinates in insertion order.
func (s *Store) Keys() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, e := range s.entries {
			if !yield(e.pos) {
				return
			}
		}
	}
}

// All yields every coordinate with its directions in insertion order.
func (s *Store) All() iter.Seq2[Coordinate, DirectionSet] {
	return func(yield func(Coordinate, DirectionSet) bool) {
		for _, e := range s.entries {
			if !yield(e.pos, e.dirs) {
				return
			}
		}
	}
}

func encodable(pos Coordinate) bool {
	return pos.InBounds(MaxSize)
}
