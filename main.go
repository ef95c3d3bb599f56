// Command reindeer solves the Advent of Code 2024 day 16 maze.
//
// It supports four commands:
//  1. "solve" – finds the lowest score and the number of best-path tiles for an input
//  2. "render" – prints the maze with every best-path tile marked 'O'
//  3. "check" – runs every input in the answer manifest and compares the results
//  4. "list" – lists the inputs found in the data directory
//
// Inputs are given either as a file path or as a name resolved against the
// data directory (flag --data-dir or AOC_DATA_DIR, loaded from .env when present).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/advent-of-code-2024/puzzle/input"
	"github.com/wricardo/advent-of-code-2024/puzzle/maze"
	"github.com/wricardo/advent-of-code-2024/puzzle/runner"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Reindeer Maze Solver"
)

const (
	defaultDataDir = "data"
	defaultInput   = "day_16_reindeer_maze"
	manifestName   = "answers.yaml"
)

// main loads .env, builds the command tree and runs it.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the command tree writing results to out.
func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "reindeer",
		Usage:   AppName,
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Value:   defaultDataDir,
				Usage:   "Directory containing puzzle inputs",
				Sources: cli.EnvVars("AOC_DATA_DIR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "Print the lowest score and best-path tile count",
				ArgsUsage: "[file|name]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					report, err := solve(ctx, cmd)
					if err != nil {
						return err
					}
					fmt.Fprint(out, report.String())
					return nil
				},
			},
			{
				Name:      "render",
				Usage:     "Print the maze with best-path tiles marked 'O'",
				ArgsUsage: "[file|name]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					report, err := solve(ctx, cmd)
					if err != nil {
						return err
					}
					fmt.Fprint(out, maze.Render(report.Grid, report.Solution.Tiles))
					fmt.Fprintf(out, "Lowest Score: %d\nBest Path Tiles: %d\n", report.LowestScore, report.BestPathTiles)
					return nil
				},
			},
			{
				Name:  "check",
				Usage: "Compare every manifest entry with its known answers",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "manifest",
						Usage: "Answer manifest (default: <data-dir>/" + manifestName + ")",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return check(ctx, cmd, out)
				},
			},
			{
				Name:  "list",
				Usage: "List the inputs in the data directory",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return list(cmd, out)
				},
			},
		},
	}
}

// setupLogging mirrors the --debug flag into the standard logger.
func setupLogging(cmd *cli.Command) {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// newRunner wires the input manager for the configured data directory.
func newRunner(cmd *cli.Command) (runner.Runner, *input.Manager, error) {
	setupLogging(cmd)

	manager, err := input.NewManager(cmd.String("data-dir"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize inputs: %w", err)
	}
	return runner.NewRunner(manager), manager, nil
}

// solve runs the input named by the first argument. An existing file path
// wins over a data directory name.
func solve(ctx context.Context, cmd *cli.Command) (*runner.Report, error) {
	r, _, err := newRunner(cmd)
	if err != nil {
		return nil, err
	}

	target := defaultInput
	if cmd.Args().Present() {
		target = cmd.Args().First()
	}

	var report *runner.Report
	if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
		report, err = r.SolveFile(ctx, target)
	} else {
		report, err = r.Solve(ctx, target)
	}
	if err != nil {
		if errors.Is(err, maze.ErrUnreachable) {
			log.Printf("No route: the goal cannot be reached in %s", target)
		}
		return nil, err
	}

	if cmd.Bool("debug") {
		log.Printf("Solved %s: %dx%d grid, path of %d tiles", report.Name, report.Rows, report.Cols, len(report.Solution.Path))
	}
	return report, nil
}

// check runs the manifest and fails if any entry did not match.
func check(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	r, manager, err := newRunner(cmd)
	if err != nil {
		return err
	}

	manifestPath := cmd.String("manifest")
	if manifestPath == "" {
		manifestPath = filepath.Join(manager.DataDir(), manifestName)
	}
	manifest, err := runner.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	results, err := r.Check(ctx, manifest)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		fmt.Fprintln(out, result.String())
		if !result.OK() {
			failed++
		}
	}
	fmt.Fprintf(out, "%d/%d puzzles OK\n", len(results)-failed, len(results))

	if failed > 0 {
		return fmt.Errorf("%d puzzle(s) failed", failed)
	}
	return nil
}

// list prints every input file in the data directory.
func list(cmd *cli.Command, out io.Writer) error {
	_, manager, err := newRunner(cmd)
	if err != nil {
		return err
	}

	inputs, err := manager.List()
	if err != nil {
		return err
	}

	for _, in := range inputs {
		if in.Valid {
			fmt.Fprintf(out, "%-30s %dx%d\n", in.Name, in.Rows, in.Cols)
		} else {
			fmt.Fprintf(out, "%-30s invalid: %s\n", in.Name, in.Error)
		}
	}
	return nil
}
