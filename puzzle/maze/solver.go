package maze

import (
	"container/heap"
	"fmt"
	"slices"
)

// StartHeading is the direction the reindeer faces on the start tile
const StartHeading = East

// Solver runs the weighted search with a fixed set of move costs
type Solver struct {
	costs Costs
}

// NewSolver creates a solver with the provided move costs
func NewSolver(costs Costs) (*Solver, error) {
	if err := costs.Validate(); err != nil {
		return nil, err
	}
	return &Solver{costs: costs}, nil
}

// DefaultSolver returns a solver using DefaultCosts
func DefaultSolver() *Solver {
	return &Solver{costs: DefaultCosts}
}

// Costs returns the solver's move costs
func (s *Solver) Costs() Costs {
	return s.costs
}

// Solve finds the lowest cost from start to goal using the puzzle's default
// costs, along with every tile on any lowest-cost path.
func Solve(g *Grid, start, goal Position) (*Solution, error) {
	return DefaultSolver().Solve(g, start, goal)
}

// Solve searches from the grid's own start to its own goal
func (g *Grid) Solve() (*Solution, error) {
	return Solve(g, g.Start, g.Goal)
}

// Solve runs Dijkstra over (position, heading) states. A state relaxed at a
// cost equal to its best gains another predecessor, so every lowest-cost
// path can be walked back from the goal without copying tile sets.
func (s *Solver) Solve(g *Grid, start, goal Position) (*Solution, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrMalformedGrid)
	}
	if !g.IsFloor(start) {
		return nil, fmt.Errorf("%w: start %v is not a floor cell", ErrInvalidPosition, start)
	}
	if !g.IsFloor(goal) {
		return nil, fmt.Errorf("%w: goal %v is not a floor cell", ErrInvalidPosition, goal)
	}

	origin := State{Pos: start, Heading: StartHeading}
	search := newSearch(origin)

	bestGoal := -1
	var goals []State

	for search.queue.Len() > 0 {
		cur := heap.Pop(&search.queue).(queueItem)

		// Stale entry: the state was improved after this one was queued.
		if cur.cost > search.best[cur.state] {
			continue
		}
		// Everything left in the queue is more expensive than the goal.
		if bestGoal >= 0 && cur.cost > bestGoal {
			break
		}

		if cur.state.Pos == goal {
			bestGoal = cur.cost
			goals = append(goals, cur.state)
			continue
		}

		for _, m := range g.moves(cur.state, s.costs) {
			search.relax(cur.state, m.to, cur.cost+m.cost)
		}
	}

	if bestGoal < 0 {
		return nil, fmt.Errorf("%w: no path from %v to %v", ErrUnreachable, start, goal)
	}

	return &Solution{
		Cost:  bestGoal,
		Tiles: search.tiles(goals),
		Path:  search.path(goals[0]),
	}, nil
}

// search holds the state owned by a single Solve call
type search struct {
	origin State
	queue  stateQueue
	best   map[State]int
	preds  map[State][]State
}

func newSearch(origin State) *search {
	s := &search{
		origin: origin,
		best:   map[State]int{origin: 0},
		preds:  make(map[State][]State),
	}
	heap.Push(&s.queue, queueItem{state: origin, cost: 0})
	return s
}

// relax offers to as reachable from from at cost. A strictly cheaper cost
// replaces the predecessor set; an equal cost joins it.
func (s *search) relax(from, to State, cost int) {
	known, seen := s.best[to]
	switch {
	case !seen || cost < known:
		s.best[to] = cost
		s.preds[to] = []State{from}
		heap.Push(&s.queue, queueItem{state: to, cost: cost})
	case cost == known:
		s.preds[to] = append(s.preds[to], from)
	}
}

// tiles walks the predecessor sets back from every lowest-cost goal state
// and returns the positions visited, sorted and deduplicated.
func (s *search) tiles(goals []State) []Position {
	seenStates := make(map[State]bool, len(goals))
	seenTiles := make(map[Position]bool)
	stack := append([]State(nil), goals...)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seenStates[cur] {
			continue
		}
		seenStates[cur] = true
		seenTiles[cur.Pos] = true
		stack = append(stack, s.preds[cur]...)
	}

	tiles := make([]Position, 0, len(seenTiles))
	for p := range seenTiles {
		tiles = append(tiles, p)
	}
	slices.SortFunc(tiles, func(a, b Position) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	return tiles
}

// path follows first predecessors from goal back to the origin
func (s *search) path(goal State) []Position {
	var path []Position
	for cur := goal; ; {
		path = append(path, cur.Pos)
		if cur == s.origin {
			break
		}
		cur = s.preds[cur][0]
	}
	slices.Reverse(path)
	return path
}

type queueItem struct {
	state State
	cost  int
}

// stateQueue implements heap.Interface as a min-heap on cost
type stateQueue []queueItem

func (q stateQueue) Len() int           { return len(q) }
func (q stateQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q stateQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *stateQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *stateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
