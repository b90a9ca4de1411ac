package pathfind

import "heroes_ai/internal/army"

const (
	DefaultWidth  = 27
	DefaultHeight = 21
)

// Grid bounds a battlefield. Cells run from (0,0) to (Width-1, Height-1).
type Grid struct {
	Width, Height int
}

func DefaultGrid() Grid { return Grid{Width: DefaultWidth, Height: DefaultHeight} }

func (g Grid) Inside(c army.Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

func (g Grid) key(c army.Cell) int { return c.Y*g.Width + c.X }

var dirs = [8]army.Cell{
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -1},
	{X: 0, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Chebyshev is the step count between two cells when diagonals cost the same as
// straight moves.
func Chebyshev(a, b army.Cell) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}
