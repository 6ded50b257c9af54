package maze

import "fmt"

const (
	keyBits = 20
	keyMask = 1<<keyBits - 1

	// MaxSize bounds the lattice edge length: every component of a stored
	// coordinate must fit in keyBits bits.
	MaxSize = 1 << keyBits
)

// Coordinate is the position of a cell in the lattice.
type Coordinate struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
	Z int `json:"z" bson:"z"`
}

// Add returns the component-wise sum of c and o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Neighbor returns the coordinate one step away in direction d.
func (c Coordinate) Neighbor(d Direction) Coordinate {
	return c.Add(d.Delta())
}

// InBounds reports whether every component lies in [0, size).
func (c Coordinate) InBounds(size int) bool {
	return c.X >= 0 && c.X < size &&
		c.Y >= 0 && c.Y < size &&
		c.Z >= 0 && c.Z < size
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// key packs the coordinate into a single integer. Components must be in [0, MaxSize).
func (c Coordinate) key() uint64 {
	return uint64(c.X)&keyMask |
		(uint64(c.Y)&keyMask)<<keyBits |
		(uint64(c.Z)&keyMask)<<(2*keyBits)
}
