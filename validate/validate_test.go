package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wricardo/advent-of-code-2024/puzzle/maze"
)

func writeMaze(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func hasError(result ValidationResult, substr string) bool {
	for _, e := range result.Errors {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidateInput_Valid(t *testing.T) {
	path := writeMaze(t, "######\n#S..E#\n######\n")

	result := validateInput(path)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Equal(t, "maze.txt", result.File)
	assert.True(t, hasError(result, "✓ Grid: 3x6"))
	assert.True(t, hasError(result, "✓ Floor cells: 4"))
	assert.True(t, hasError(result, "lowest score 3 over 4 best-path tiles"))
}

func TestValidateInput_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"bad character", "#####\n#S?E#\n#####\n", "invalid character '?'"},
		{"ragged rows", "#####\n#S.E\n#####\n", "row 2 has 4 cells"},
		{"missing goal", "#####\n#S..#\n#####\n", "no goal"},
		{"walled off", "#######\n#S.#.E#\n#######\n", "walled off"},
		{"needs reversal", "######\n#E..S#\n######\n", "needs a reversal"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := validateInput(writeMaze(t, test.content))
			assert.False(t, result.Valid)
			assert.True(t, hasError(result, test.errText), "errors: %v", result.Errors)
		})
	}
}

func TestValidateInput_MissingFile(t *testing.T) {
	result := validateInput(filepath.Join(t.TempDir(), "missing.txt"))
	assert.False(t, result.Valid)
	assert.True(t, hasError(result, "Failed to read file"))
}

func TestValidateConnectivity_Samples(t *testing.T) {
	for _, name := range []string{"sample_a.txt", "sample_b.txt"} {
		t.Run(name, func(t *testing.T) {
			grid, err := maze.LoadFile(filepath.Join("..", "puzzle", "maze", "testdata", name))
			require.NoError(t, err)

			result := validateConnectivity(grid)
			assert.True(t, result.Valid, "errors: %v", result.Errors)
		})
	}
}
