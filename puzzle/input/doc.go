// Package input loads puzzle input files from a data directory.
//
// The Manager resolves input names against its directory, parses them into
// maze grids and caches the result. Names without an extension get ".txt"
// appended, so "day_16_reindeer_maze" and "day_16_reindeer_maze.txt" refer to
// the same file.
//
// Usage:
//
//	manager, err := input.NewManager("data")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	grid, err := manager.Load("day_16_reindeer_maze")
//	if errors.Is(err, input.ErrInputNotFound) {
//		log.Fatal("download your puzzle input first")
//	}
package input
