package maze

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedGrid   = errors.New("malformed grid")
	ErrUnreachable     = errors.New("goal unreachable from start")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidCosts    = errors.New("invalid move costs")
)

// CellKind represents the two kinds of maze cells
type CellKind uint8

const (
	Wall CellKind = iota
	Floor
)

// Input symbols
const (
	WallSymbol  = '#'
	FloorSymbol = '.'
	StartSymbol = 'S'
	GoalSymbol  = 'E'
	TileSymbol  = 'O'
)

func (k CellKind) String() string {
	if k == Floor {
		return "floor"
	}
	return "wall"
}

// Position is a (row, col) coordinate. Rows grow downward.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns p shifted by d
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Step returns the neighbouring position one cell along h
func (p Position) Step(h Heading) Position {
	return p.Add(h.Delta())
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Less orders positions row-major
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// State is a search node. The same tile entered from different headings is a
// different state.
type State struct {
	Pos     Position `json:"pos"`
	Heading Heading  `json:"heading"`
}

// Costs configures the price of a single move
type Costs struct {
	Step int `json:"step" yaml:"step"`
	Turn int `json:"turn" yaml:"turn"`
}

// DefaultCosts are the puzzle's move prices
var DefaultCosts = Costs{Step: 1, Turn: 1000}

// Validate reports whether the costs can drive a shortest-path search
func (c Costs) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("%w: step cost must be positive, got %d", ErrInvalidCosts, c.Step)
	}
	if c.Turn < 0 {
		return fmt.Errorf("%w: turn cost must not be negative, got %d", ErrInvalidCosts, c.Turn)
	}
	return nil
}

// Solution is the result of a successful search
type Solution struct {
	// Cost is the lowest total cost from start to goal.
	Cost int `json:"cost"`

	// Tiles holds every position on at least one lowest-cost path, sorted
	// row-major and without duplicates.
	Tiles []Position `json:"tiles"`

	// Path is one lowest-cost route, start first.
	Path []Position `json:"path"`
}

// TileCount returns the number of distinct tiles on any lowest-cost path
func (s *Solution) TileCount() int {
	if s == nil {
		return 0
	}
	return len(s.Tiles)
}
