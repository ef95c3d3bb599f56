package maze

import (
	"bytes"
	"fmt"
	"os"
)

// Grid is a parsed, rectangular maze. Start and Goal are stored as Floor
// cells and recorded separately.
type Grid struct {
	cells [][]CellKind
	Start Position
	Goal  Position
}

// NewGrid builds a grid from rows of cell kinds. Rows must be non-empty and
// of equal length, and start and goal must be floor cells.
func NewGrid(cells [][]CellKind, start, goal Position) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: grid is empty", ErrMalformedGrid)
	}
	width := len(cells[0])
	copied := make([][]CellKind, len(cells))
	for i, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedGrid, i+1, len(row), width)
		}
		copied[i] = append([]CellKind(nil), row...)
	}

	g := &Grid{cells: copied, Start: start, Goal: goal}
	if !g.IsFloor(start) {
		return nil, fmt.Errorf("%w: start %v is not a floor cell", ErrInvalidPosition, start)
	}
	if !g.IsFloor(goal) {
		return nil, fmt.Errorf("%w: goal %v is not a floor cell", ErrInvalidPosition, goal)
	}
	return g, nil
}

// Parse reads a text maze. Rows are separated by '\n'; "\r\n" line endings
// and trailing blank lines are tolerated.
func Parse(data []byte) (*Grid, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n"))
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: input is empty", ErrMalformedGrid)
	}

	var (
		cells     = make([][]CellKind, len(lines))
		width     = len(lines[0])
		start     Position
		goal      Position
		haveStart bool
		haveGoal  bool
	)

	for r, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedGrid, r+1, len(line), width)
		}

		row := make([]CellKind, width)
		for c, ch := range line {
			switch ch {
			case WallSymbol:
				row[c] = Wall
			case FloorSymbol:
				row[c] = Floor
			case StartSymbol:
				if haveStart {
					return nil, fmt.Errorf("%w: second start at row %d, col %d", ErrMalformedGrid, r+1, c+1)
				}
				start, haveStart = Position{Row: r, Col: c}, true
				row[c] = Floor
			case GoalSymbol:
				if haveGoal {
					return nil, fmt.Errorf("%w: second goal at row %d, col %d", ErrMalformedGrid, r+1, c+1)
				}
				goal, haveGoal = Position{Row: r, Col: c}, true
				row[c] = Floor
			default:
				return nil, fmt.Errorf("%w: invalid character '%c' at row %d, col %d", ErrMalformedGrid, ch, r+1, c+1)
			}
		}
		cells[r] = row
	}

	if !haveStart {
		return nil, fmt.Errorf("%w: no start (%c) cell", ErrMalformedGrid, StartSymbol)
	}
	if !haveGoal {
		return nil, fmt.Errorf("%w: no goal (%c) cell", ErrMalformedGrid, GoalSymbol)
	}

	return &Grid{cells: cells, Start: start, Goal: goal}, nil
}

// ParseString is Parse for string input
func ParseString(s string) (*Grid, error) {
	return Parse([]byte(s))
}

// LoadFile reads and parses a maze file
func LoadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Rows returns the grid height
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the grid width
func (g *Grid) Cols() int {
	return len(g.cells[0])
}

// InBounds reports whether p lies on the grid
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < len(g.cells) && p.Col >= 0 && p.Col < len(g.cells[0])
}

// At returns the kind of the cell at p. Off-grid positions are walls.
func (g *Grid) At(p Position) CellKind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row][p.Col]
}

// IsFloor reports whether p is an on-grid floor cell
func (g *Grid) IsFloor(p Position) bool {
	return g.At(p) == Floor
}

// String renders the grid back to its text form
func (g *Grid) String() string {
	return Render(g, nil)
}
