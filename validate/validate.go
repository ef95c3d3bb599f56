// Command validate provides a small CLI that validates maze input files in
// the ../data directory (or the directory given as the first argument). It
// checks:
//   - Grid consistency and allowed characters (#, ., S, E)
//   - Presence of exactly one start (S) and one goal (E)
//   - Connectivity: the goal is reachable from the start over floor cells
//   - Solvability under the movement rules (no reversals, 90-degree turns)
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/advent-of-code-2024/puzzle/maze"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateInput loads and validates a single maze file.
func validateInput(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	grid, err := maze.Parse(data)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid grid: %v", err))
		return result
	}

	connectivity := validateConnectivity(grid)
	if !connectivity.Valid {
		result.Valid = false
	}
	result.Errors = append(result.Errors, connectivity.Errors...)

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", grid.Rows(), grid.Cols()))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Floor cells: %d", grid.CountFloor()))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Start: %v, Goal: %v", grid.Start, grid.Goal))
	}

	return result
}

// validateConnectivity checks that the goal is reachable from the start,
// first by flood fill and then under the turning rules, which can strand a
// goal that plain connectivity would accept.
func validateConnectivity(grid *maze.Grid) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if !maze.Reachable(grid, grid.Start, grid.Goal) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Connectivity failure: goal %v is walled off from start %v", grid.Goal, grid.Start))
		return result
	}

	solution, err := grid.Solve()
	if errors.Is(err, maze.ErrUnreachable) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Movement failure: goal %v needs a reversal from the east-facing start", grid.Goal))
		return result
	}
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Solve failure: %v", err))
		return result
	}

	result.Errors = append(result.Errors, fmt.Sprintf("✓ Connectivity: lowest score %d over %d best-path tiles", solution.Cost, solution.TileCount()))
	return result
}

// main scans the data directory for *.txt files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	dataDir := "../data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dataDir, "*.txt"))
	if err != nil {
		fmt.Printf("Error finding input files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateInput(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All inputs are valid!")
	} else {
		fmt.Println("❌ Some inputs have errors")
		os.Exit(1)
	}
}
