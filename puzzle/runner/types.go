package runner

import (
	"fmt"
	"strings"
	"time"

	"github.com/wricardo/advent-of-code-2024/puzzle/maze"
)

// Report contains the answers of one solve
type Report struct {
	Name          string         `json:"name"`
	Rows          int            `json:"rows"`
	Cols          int            `json:"cols"`
	LowestScore   int            `json:"lowest_score"`
	BestPathTiles int            `json:"best_path_tiles"`
	Elapsed       time.Duration  `json:"elapsed"`
	Grid          *maze.Grid     `json:"-"`
	Solution      *maze.Solution `json:"-"`
}

func (r *Report) String() string {
	return fmt.Sprintf("%s\nInput: %s (%dx%d)\nRun Time: %v\nLowest Score 1: %d\nBest Path Tiles 2: %d\n",
		Title, r.Name, r.Rows, r.Cols, r.Elapsed, r.LowestScore, r.BestPathTiles)
}

// Status is the outcome of checking one manifest entry
type Status string

const (
	StatusPass      Status = "pass"
	StatusFail      Status = "fail"
	StatusUnchecked Status = "unchecked"
	StatusError     Status = "error"
)

// CheckResult compares one manifest entry with its computed answers
type CheckResult struct {
	Entry  Entry   `json:"entry"`
	Report *Report `json:"report,omitempty"`
	Status Status  `json:"status"`
	Detail string  `json:"detail,omitempty"`
}

// OK reports whether the entry passed or had nothing to compare
func (c *CheckResult) OK() bool {
	return c.Status == StatusPass || c.Status == StatusUnchecked
}

func (c *CheckResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %s", strings.ToUpper(string(c.Status)), c.Entry.Name)
	if c.Report != nil {
		fmt.Fprintf(&b, " (score %d, tiles %d, %v)", c.Report.LowestScore, c.Report.BestPathTiles, c.Report.Elapsed)
	}
	if c.Detail != "" {
		fmt.Fprintf(&b, ": %s", c.Detail)
	}
	return b.String()
}
