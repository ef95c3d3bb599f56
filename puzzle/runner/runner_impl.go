package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/wricardo/advent-of-code-2024/puzzle/maze"
)

// runnerImpl implements the Runner interface
type runnerImpl struct {
	inputs InputLoader
	solver *maze.Solver
	now    func() time.Time
}

// NewRunner creates a runner over the given inputs using the puzzle's costs
func NewRunner(inputs InputLoader) Runner {
	return &runnerImpl{inputs: inputs, solver: maze.DefaultSolver(), now: time.Now}
}

// NewRunnerWithSolver creates a runner with custom move costs
func NewRunnerWithSolver(inputs InputLoader, solver *maze.Solver) Runner {
	return &runnerImpl{inputs: inputs, solver: solver, now: time.Now}
}

// Solve runs the named input from the data directory
func (r *runnerImpl) Solve(ctx context.Context, name string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid, err := r.inputs.Load(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load input %s: %w", name, err)
	}
	return r.run(name, grid)
}

// SolveFile runs an input read from path
func (r *runnerImpl) SolveFile(ctx context.Context, path string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid, err := maze.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load input %s: %w", path, err)
	}
	return r.run(path, grid)
}

// Check solves each manifest entry in order. A failing entry does not stop
// the run; cancellation does.
func (r *runnerImpl) Check(ctx context.Context, manifest *Manifest) ([]*CheckResult, error) {
	if manifest == nil {
		return nil, fmt.Errorf("%w: manifest cannot be nil", ErrInvalidManifest)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	results := make([]*CheckResult, 0, len(manifest.Puzzles))
	for _, entry := range manifest.Puzzles {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		report, err := r.Solve(ctx, entry.Input)
		if err != nil {
			results = append(results, &CheckResult{
				Entry:  entry,
				Status: StatusError,
				Detail: err.Error(),
			})
			continue
		}
		results = append(results, compare(entry, report))
	}
	return results, nil
}

func (r *runnerImpl) run(name string, grid *maze.Grid) (*Report, error) {
	started := r.now()
	solution, err := r.solver.Solve(grid, grid.Start, grid.Goal)
	elapsed := r.now().Sub(started)
	if err != nil {
		return nil, fmt.Errorf("failed to solve %s: %w", name, err)
	}

	return &Report{
		Name:          name,
		Rows:          grid.Rows(),
		Cols:          grid.Cols(),
		LowestScore:   solution.Cost,
		BestPathTiles: solution.TileCount(),
		Elapsed:       elapsed,
		Grid:          grid,
		Solution:      solution,
	}, nil
}

// compare grades a report against the entry's expectations
func compare(entry Entry, report *Report) *CheckResult {
	result := &CheckResult{Entry: entry, Report: report, Status: StatusPass}

	if entry.LowestScore == nil && entry.BestPathTiles == nil {
		result.Status = StatusUnchecked
		return result
	}
	if entry.LowestScore != nil && *entry.LowestScore != report.LowestScore {
		result.Status = StatusFail
		result.Detail = fmt.Sprintf("lowest score %d, want %d", report.LowestScore, *entry.LowestScore)
		return result
	}
	if entry.BestPathTiles != nil && *entry.BestPathTiles != report.BestPathTiles {
		result.Status = StatusFail
		result.Detail = fmt.Sprintf("best path tiles %d, want %d", report.BestPathTiles, *entry.BestPathTiles)
	}
	return result
}
