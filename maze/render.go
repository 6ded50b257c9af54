package maze

import (
	"fmt"
	"strings"
)

// String draws the maze one z layer at a time. Rows run along x and columns
// along y; a cell opening up shows '^', down 'v', both 'x'.
func (m *Maze) String() string {
	var output strings.Builder

	for z := 0; z < m.size; z++ {
		fmt.Fprintf(&output, "z=%d\n", z)

		// Top boundary
		output.WriteString("+" + strings.Repeat("---+", m.size) + "\n")

		for x := 0; x < m.size; x++ {
			cellRow := "|"
			wallRow := "+"
			for y := 0; y < m.size; y++ {
				dirs, _ := m.cells.Get(Coordinate{X: x, Y: y, Z: z})

				cellRow += " " + verticalMark(dirs) + " "
				if dirs.Has(Right) {
					cellRow += " "
				} else {
					cellRow += "|"
				}

				if dirs.Has(Front) {
					wallRow += "   +"
				} else {
					wallRow += "---+"
				}
			}
			output.WriteString(cellRow + "\n")
			output.WriteString(wallRow + "\n")
		}
	}

	return output.String()
}

func verticalMark(dirs DirectionSet) string {
	switch {
	case dirs.Has(Up) && dirs.Has(Down):
		return "x"
	case dirs.Has(Up):
		return "^"
	case dirs.Has(Down):
		return "v"
	default:
		return " "
	}
}
