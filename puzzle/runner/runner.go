package runner

import (
	"context"

	"github.com/wricardo/advent-of-code-2024/puzzle/maze"
)

// Title is the puzzle name printed in reports
const Title = "Day 16: Reindeer Maze"

// Runner defines the puzzle operations exposed to the command line
type Runner interface {
	// Solve runs the named input from the data directory
	Solve(ctx context.Context, name string) (*Report, error)

	// SolveFile runs an input read from an arbitrary path
	SolveFile(ctx context.Context, path string) (*Report, error)

	// Check runs every manifest entry and compares the answers
	Check(ctx context.Context, manifest *Manifest) ([]*CheckResult, error)
}

// InputLoader resolves input names to parsed grids
type InputLoader interface {
	Load(name string) (*maze.Grid, error)
}
