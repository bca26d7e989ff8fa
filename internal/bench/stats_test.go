package bench

import (
	"math"
	"testing"

	"github.com/abbasmoosajee07/challenge-utils/internal/runner"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMeanStd(t *testing.T) {
	mean, std := meanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(mean, 5) {
		t.Fatalf("mean = %v", mean)
	}
	if !almostEqual(std, 2) {
		t.Fatalf("std = %v", std)
	}
	mean, std = meanStd(nil)
	if mean != 0 || std != 0 {
		t.Fatalf("empty series: mean=%v std=%v", mean, std)
	}
}

func TestSummarize(t *testing.T) {
	c := NewCollector()
	// Problem 1: two iterations.
	c.Record(runner.Measurement{Problem: 1, Lang: "py", File: "01/a.py", TimeMs: 100, MemoryMB: 10, Lines: 20, SizeKB: 1.5})
	c.Record(runner.Measurement{Problem: 1, Lang: "py", File: "01/a.py", TimeMs: 300, MemoryMB: 30, Lines: 20, SizeKB: 1.5})
	// Problem 2: one iteration.
	c.Record(runner.Measurement{Problem: 2, Lang: "c", File: "02/b.c", TimeMs: 100, MemoryMB: 20, Lines: 40, SizeKB: 2.5})

	s := c.Summarize()
	if len(s.Rows) != 2 {
		t.Fatalf("rows = %d", len(s.Rows))
	}

	r1 := s.Rows[0]
	if r1.Problem != 1 || !almostEqual(r1.AvgTime, 200) || !almostEqual(r1.StdTime, 100) {
		t.Fatalf("row 1: %+v", r1)
	}
	if r1.Lang != "py" || r1.Lines != 20 {
		t.Fatalf("row 1 file info: %+v", r1)
	}

	if !almostEqual(s.Totals.Time, 300) {
		t.Fatalf("total time = %v", s.Totals.Time)
	}
	if !almostEqual(s.Totals.TimeStd, 100) {
		t.Fatalf("total time std = %v", s.Totals.TimeStd)
	}
	if s.Totals.Lines != 60 {
		t.Fatalf("total lines = %d", s.Totals.Lines)
	}

	// Shares of total.
	if !almostEqual(r1.TimePct, 200.0/300.0*100) {
		t.Fatalf("time pct = %v", r1.TimePct)
	}
	if !almostEqual(s.Rows[1].MemPct, 20.0/40.0*100) {
		t.Fatalf("mem pct = %v", s.Rows[1].MemPct)
	}
}

func TestSummarizeRowsSortedByProblem(t *testing.T) {
	c := NewCollector()
	for _, p := range []int{9, 2, 11} {
		c.Record(runner.Measurement{Problem: p, Lang: "py", TimeMs: 1, MemoryMB: 1})
	}
	s := c.Summarize()
	want := []int{2, 9, 11}
	for i, p := range want {
		if s.Rows[i].Problem != p {
			t.Fatalf("row %d problem = %d, want %d", i, s.Rows[i].Problem, p)
		}
	}
}
