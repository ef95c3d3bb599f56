package maze

import "strings"

// Render draws the grid in its text form with the given tiles marked 'O'.
// Start and goal keep their own symbols.
func Render(g *Grid, tiles []Position) string {
	marked := make(map[Position]bool, len(tiles))
	for _, t := range tiles {
		marked[t] = true
	}

	var b strings.Builder
	b.Grow(g.Rows() * (g.Cols() + 1))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == g.Start:
				b.WriteByte(StartSymbol)
			case p == g.Goal:
				b.WriteByte(GoalSymbol)
			case marked[p]:
				b.WriteByte(TileSymbol)
			case g.IsFloor(p):
				b.WriteByte(FloorSymbol)
			default:
				b.WriteByte(WallSymbol)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
