package maze

import "fmt"

// Heading is one of the four compass directions
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists every heading clockwise from North
var Headings = [...]Heading{North, East, South, West}

var headingDeltas = [...]Position{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

var headingNames = [...]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

// Delta returns the unit (row, col) offset of a heading
func (h Heading) Delta() Position {
	return headingDeltas[h%4]
}

// Left returns the heading after a 90-degree counter-clockwise turn
func (h Heading) Left() Heading {
	return (h + 3) % 4
}

// Right returns the heading after a 90-degree clockwise turn
func (h Heading) Right() Heading {
	return (h + 1) % 4
}

// Reverse returns the opposite heading. It is never a legal single move.
func (h Heading) Reverse() Heading {
	return (h + 2) % 4
}

func (h Heading) String() string {
	return headingNames[h%4]
}

// move is a legal transition out of a state together with its price
type move struct {
	to   State
	cost int
}

// moves returns the legal successors of s: straight ahead, then the left and
// right turns. Each turn also advances one cell, so it is priced Turn+Step.
// Moves onto walls or off the grid are dropped.
func (g *Grid) moves(s State, costs Costs) []move {
	candidates := [3]move{
		{to: State{Pos: s.Pos.Step(s.Heading), Heading: s.Heading}, cost: costs.Step},
		{to: State{Pos: s.Pos.Step(s.Heading.Left()), Heading: s.Heading.Left()}, cost: costs.Turn + costs.Step},
		{to: State{Pos: s.Pos.Step(s.Heading.Right()), Heading: s.Heading.Right()}, cost: costs.Turn + costs.Step},
	}

	legal := make([]move, 0, len(candidates))
	for _, m := range candidates {
		if g.IsFloor(m.to.Pos) {
			legal = append(legal, m)
		}
	}
	return legal
}

// headingBetween returns the heading of a single step from a to b
func headingBetween(a, b Position) (Heading, bool) {
	d := Position{Row: b.Row - a.Row, Col: b.Col - a.Col}
	for _, h := range Headings {
		if h.Delta() == d {
			return h, true
		}
	}
	return 0, false
}

// PathCost prices a sequence of adjacent positions walked from an initial
// heading. It rejects gaps and reversals.
func PathCost(path []Position, heading Heading, costs Costs) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		next, ok := headingBetween(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidPosition, path[i-1], path[i])
		}
		switch next {
		case heading:
			total += costs.Step
		case heading.Left(), heading.Right():
			total += costs.Turn + costs.Step
		default:
			return 0, fmt.Errorf("%w: reversal at %v", ErrInvalidPosition, path[i-1])
		}
		heading = next
	}
	return total, nil
}
