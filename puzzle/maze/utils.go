package maze

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// CountFloor counts the floor cells in the grid, start and goal included
func (g *Grid) CountFloor() int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == Floor {
				count++
			}
		}
	}
	return count
}

// Neighbors returns the floor cells orthogonally adjacent to p, in heading
// order starting from North
func (g *Grid) Neighbors(p Position) []Position {
	var result []Position
	for _, h := range Headings {
		if n := p.Step(h); g.IsFloor(n) {
			result = append(result, n)
		}
	}
	return result
}

// Reachable reports whether to can be reached from from by 4-directional
// movement over floor cells. Headings and turn costs are ignored.
func Reachable(g *Grid, from, to Position) bool {
	if !g.IsFloor(from) || !g.IsFloor(to) {
		return false
	}

	visited := map[Position]bool{from: true}
	queue := []Position{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			return true
		}
		for _, n := range g.Neighbors(current) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}
