package maze

import (
	"fmt"
	"math/bits"
	"strings"
)

// Direction identifies one of the six faces of a lattice cell.
type Direction uint8

const (
	Front Direction = iota // Front advances along x.
	Back                   // Back retreats along x.
	Left                   // Left retreats along y.
	Right                  // Right advances along y.
	Up                     // Up advances along z.
	Down                   // Down retreats along z.

	// NumDirections is the number of faces of a cell.
	NumDirections = 6
)

var (
	opposites = [NumDirections]Direction{Back, Front, Right, Left, Down, Up}

	deltas = [NumDirections]Coordinate{
		{X: 1}, {X: -1},
		{Y: -1}, {Y: 1},
		{Z: 1}, {Z: -1},
	}

	directionNames = [NumDirections]string{"Front", "Back", "Left", "Right", "Up", "Down"}
)

// Directions returns every direction in enumeration order.
func Directions() []Direction {
	return []Direction{Front, Back, Left, Right, Up, Down}
}

// ParseDirection converts a direction name (case-insensitive) into a Direction.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if strings.EqualFold(n, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// Valid reports whether d is one of the six known directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// Opposite returns the direction pointing back through the same face.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the coordinate offset of a single step in direction d.
func (d Direction) Delta() Coordinate {
	return deltas[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DirectionSet is the set of open faces of a cell, one bit per Direction.
type DirectionSet uint8

// allDirections holds every bit a DirectionSet may use.
const allDirections DirectionSet = 1<<NumDirections - 1

// Valid reports whether the set only holds known directions.
func (s DirectionSet) Valid() bool {
	return s&^allDirections == 0
}

// NewDirectionSet returns a set holding the given directions.
func NewDirectionSet(ds ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range ds {
		s = s.With(d)
	}
	return s
}

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// With returns a copy of the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | 1<<d
}

// Len returns the number of open faces.
func (s DirectionSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Directions lists the members of the set in enumeration order.
func (s DirectionSet) Directions() []Direction {
	result := make([]Direction, 0, s.Len())
	for d := Direction(0); d < NumDirections; d++ {
		if s.Has(d) {
			result = append(result, d)
		}
	}
	return result
}

func (s DirectionSet) String() string {
	names := make([]string, 0, s.Len())
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
