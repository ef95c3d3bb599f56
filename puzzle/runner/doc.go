// Package runner times puzzle solves and checks them against known answers.
//
// A Runner resolves inputs through an input.Manager, runs the maze solver and
// returns a Report with both answers and the elapsed time. Check runs every
// entry of a YAML answer manifest in order:
//
//	puzzles:
//	  - name: sample_a
//	    input: samples/sample_a.txt
//	    lowest_score: 7036
//	    best_path_tiles: 45
//
// Entries without expected values are solved and reported as unchecked.
package runner
