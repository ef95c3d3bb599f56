package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wricardo/advent-of-code-2024/puzzle/maze"
)

func TestMinTurns(t *testing.T) {
	start := maze.Position{Row: 5, Col: 5}

	tests := []struct {
		name     string
		goal     maze.Position
		expected int
	}{
		{"same tile", maze.Position{Row: 5, Col: 5}, 0},
		{"straight ahead", maze.Position{Row: 5, Col: 9}, 0},
		{"directly behind", maze.Position{Row: 5, Col: 1}, 3},
		{"north east", maze.Position{Row: 1, Col: 9}, 1},
		{"straight south", maze.Position{Row: 9, Col: 5}, 1},
		{"north west", maze.Position{Row: 1, Col: 1}, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, minTurns(start, test.goal))
		})
	}
}

func TestAnalyze(t *testing.T) {
	grid, err := maze.ParseString("#######\n#S..#.#\n###...#\n#E..#.#\n#######\n")
	require.NoError(t, err)

	a := analyze(grid)
	assert.Equal(t, 5, a.Rows)
	assert.Equal(t, 7, a.Cols)
	assert.Equal(t, 11, a.Floor)
	assert.Equal(t, 2, a.Distance)
	assert.Equal(t, 1, a.MinTurns)
	assert.Equal(t, 1002, a.LowerBound)
	assert.Equal(t, []maze.Position{{Row: 1, Col: 5}, {Row: 3, Col: 5}}, a.DeadEnds)
	assert.Equal(t, 2, a.Junctions)
}

func TestAnalyze_LowerBoundHoldsForSamples(t *testing.T) {
	for _, name := range []string{"sample_a.txt", "sample_b.txt"} {
		t.Run(name, func(t *testing.T) {
			grid, err := maze.LoadFile(filepath.Join("..", "..", "puzzle", "maze", "testdata", name))
			require.NoError(t, err)

			solution, err := grid.Solve()
			require.NoError(t, err)
			assert.LessOrEqual(t, analyze(grid).LowerBound, solution.Cost)
		})
	}
}

func TestAnalyzeFile_DoesNotPanic(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("######\n#S..E#\n######\n"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("not a maze"), 0644))

	assert.NotPanics(t, func() { analyzeFile(good) })
	assert.NotPanics(t, func() { analyzeFile(bad) })
	assert.NotPanics(t, func() { analyzeFile(filepath.Join(dir, "missing.txt")) })
}
