package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wricardo/advent-of-code-2024/puzzle/input"
	"github.com/wricardo/advent-of-code-2024/puzzle/maze"
)

const (
	corridorMaze = "######\n#S..E#\n######\n"
	sealedMaze   = "#######\n#S.#.E#\n#######\n"
)

func intPtr(v int) *int { return &v }

func createTestRunner(t *testing.T) (*runnerImpl, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corridor.txt"), []byte(corridorMaze), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sealed.txt"), []byte(sealedMaze), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.txt"), []byte("#S#\n"), 0644))

	manager, err := input.NewManager(dir)
	require.NoError(t, err)

	r := NewRunner(manager).(*runnerImpl)

	// Each clock read advances by a fixed step so elapsed time is stable.
	clock := time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(5 * time.Millisecond)
		return clock
	}
	return r, dir
}

func TestRunner_Solve(t *testing.T) {
	r, _ := createTestRunner(t)

	report, err := r.Solve(context.Background(), "corridor")
	require.NoError(t, err)
	assert.Equal(t, "corridor", report.Name)
	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 6, report.Cols)
	assert.Equal(t, 3, report.LowestScore)
	assert.Equal(t, 4, report.BestPathTiles)
	assert.Equal(t, 5*time.Millisecond, report.Elapsed)
	require.NotNil(t, report.Solution)
	assert.Len(t, report.Solution.Path, 4)

	text := report.String()
	assert.True(t, strings.HasPrefix(text, Title+"\n"))
	assert.Contains(t, text, "Run Time: 5ms")
	assert.Contains(t, text, "Lowest Score 1: 3")
	assert.Contains(t, text, "Best Path Tiles 2: 4")
}

func TestRunner_SolveErrors(t *testing.T) {
	r, _ := createTestRunner(t)
	ctx := context.Background()

	_, err := r.Solve(ctx, "sealed")
	assert.ErrorIs(t, err, maze.ErrUnreachable)

	_, err = r.Solve(ctx, "broken")
	assert.ErrorIs(t, err, maze.ErrMalformedGrid)

	_, err = r.Solve(ctx, "missing")
	assert.ErrorIs(t, err, input.ErrInputNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.Solve(cancelled, "corridor")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_SolveFile(t *testing.T) {
	r, dir := createTestRunner(t)

	report, err := r.SolveFile(context.Background(), filepath.Join(dir, "corridor.txt"))
	require.NoError(t, err)
	assert.Equal(t, 3, report.LowestScore)

	_, err = r.SolveFile(context.Background(), filepath.Join(dir, "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunner_CustomSolver(t *testing.T) {
	_, dir := createTestRunner(t)
	manager, err := input.NewManager(dir)
	require.NoError(t, err)
	solver, err := maze.NewSolver(maze.Costs{Step: 10, Turn: 0})
	require.NoError(t, err)

	report, err := NewRunnerWithSolver(manager, solver).Solve(context.Background(), "corridor")
	require.NoError(t, err)
	assert.Equal(t, 30, report.LowestScore)
}

func TestRunner_Check(t *testing.T) {
	r, _ := createTestRunner(t)

	manifest := &Manifest{Puzzles: []Entry{
		{Name: "pass", Input: "corridor", LowestScore: intPtr(3), BestPathTiles: intPtr(4)},
		{Name: "wrong score", Input: "corridor", LowestScore: intPtr(4), BestPathTiles: intPtr(4)},
		{Name: "wrong tiles", Input: "corridor", BestPathTiles: intPtr(5)},
		{Name: "unchecked", Input: "corridor.txt"},
		{Name: "unreachable", Input: "sealed", LowestScore: intPtr(0), BestPathTiles: intPtr(0)},
	}}

	results, err := r.Check(context.Background(), manifest)
	require.NoError(t, err)
	require.Len(t, results, 5)

	expected := []Status{StatusPass, StatusFail, StatusFail, StatusUnchecked, StatusError}
	for i, status := range expected {
		assert.Equal(t, status, results[i].Status, results[i].Entry.Name)
	}

	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.Equal(t, "lowest score 3, want 4", results[1].Detail)
	assert.Equal(t, "best path tiles 4, want 5", results[2].Detail)
	assert.True(t, results[3].OK())
	assert.False(t, results[4].OK())
	assert.Nil(t, results[4].Report, "an unreachable goal never yields zero answers")
	assert.Contains(t, results[4].Detail, "goal unreachable")

	assert.Contains(t, results[0].String(), "PASS")
	assert.Contains(t, results[1].String(), "want 4")
}

func TestRunner_CheckCancelled(t *testing.T) {
	r, _ := createTestRunner(t)
	manifest := &Manifest{Puzzles: []Entry{{Name: "a", Input: "corridor"}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.Check(ctx, manifest)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)

	_, err = r.Check(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidManifest)

	_, err = r.Check(context.Background(), &Manifest{})
	assert.ErrorIs(t, err, ErrInvalidManifest)
}
