package maze

// Point is a position in rendering space. Cell centres sit on integer coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Segment is a half-cell line from a cell centre towards an open face.
type Segment struct {
	From      Point     `json:"from"`
	To        Point     `json:"to"`
	Direction Direction `json:"direction"`
	Color     uint32    `json:"color"` // 0xRRGGBB
}

// segmentColors holds the line colour used for each direction.
var segmentColors = [NumDirections]uint32{
	Front: 0x9933FF,
	Back:  0x3311FF,
	Left:  0x00AA00,
	Right: 0x00FF00,
	Up:    0xFF00AA,
	Down:  0xAA00AA,
}

// Color returns the line colour associated with d.
func (d Direction) Color() uint32 {
	return segmentColors[d]
}

// Segments returns one segment per open face, cells in discovery order and
// faces in direction order. Two segments meet at the shared face of every passage.
func (m *Maze) Segments() []Segment {
	result := make([]Segment, 0, 2*m.Edges())
	for pos, dirs := range m.cells.All() {
		centre := Point{X: float64(pos.X), Y: float64(pos.Y), Z: float64(pos.Z)}
		for _, d := range dirs.Directions() {
			delta := d.Delta()
			result = append(result, Segment{
				From: centre,
				To: Point{
					X: centre.X + float64(delta.X)/2,
					Y: centre.Y + float64(delta.Y)/2,
					Z: centre.Z + float64(delta.Z)/2,
				},
				Direction: d,
				Color:     d.Color(),
			})
		}
	}
	return result
}
