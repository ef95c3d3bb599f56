// Package maze provides the reindeer maze model and its weighted path search.
//
// The maze package implements:
//   - Parsing of text mazes ('#' wall, '.' floor, 'S' start, 'E' goal)
//   - Headings, positions and the legal single moves between search states
//   - A Dijkstra search over (position, heading) states where a step costs 1
//     and a 90-degree turn costs 1000
//   - Recovery of every tile that lies on at least one lowest-cost path
//
// Core Types:
//
// Grid is the immutable parsed maze. State is the search unit, because the
// cost of reaching a tile depends on the direction it was entered from.
// Solution carries the lowest cost, the deduplicated best-path tiles and one
// representative path.
//
// Usage:
//
//	grid, err := maze.LoadFile("data/day_16_reindeer_maze.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	solution, err := grid.Solve()
//	if errors.Is(err, maze.ErrUnreachable) {
//		log.Fatal("goal is sealed off")
//	}
//	fmt.Println(solution.Cost, solution.TileCount())
//
// Movement Rules:
//
// The reindeer starts on S facing East. Each move either continues straight
// into the next cell or turns 90 degrees left or right and moves one cell in
// the new direction. Reversing in place is never a single move. Walls block a
// move entirely.
package maze
