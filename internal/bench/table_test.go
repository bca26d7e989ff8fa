package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abbasmoosajee07/challenge-utils/internal/runner"
)

func sampleSummary() Summary {
	c := NewCollector()
	c.Record(runner.Measurement{Problem: 1, Lang: "py", TimeMs: 120.5, MemoryMB: 14.25, Lines: 32, SizeKB: 1.2})
	c.Record(runner.Measurement{Problem: 3, Lang: "c", TimeMs: 10.5, MemoryMB: 1.5, Lines: 64, SizeKB: 2.4})
	return c.Summarize()
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(sampleSummary(), "Problem", "Advent of Code 2024", 3)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if !strings.HasPrefix(lines[0], "Problem ") {
		t.Fatalf("header line: %q", lines[0])
	}
	for _, col := range []string{"Avg(ms)", "STD(ms)", "Time%", "Avg(MB)", "STD(MB)", "Mem%", "Lang", "Size(kB)", "Lines"} {
		if !strings.Contains(lines[0], col) {
			t.Fatalf("header missing %q: %q", col, lines[0])
		}
	}
	if lines[1] != strings.Repeat("-", tableRule) {
		t.Fatalf("rule line: %q", lines[1])
	}

	// One row per problem, in problem order.
	if !strings.HasPrefix(lines[2], "1 ") || !strings.Contains(lines[2], "120.50") {
		t.Fatalf("problem 1 row: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "3 ") || !strings.Contains(lines[3], "10.50") {
		t.Fatalf("problem 3 row: %q", lines[3])
	}

	if !strings.HasPrefix(lines[5], "Total ") || !strings.Contains(lines[5], "131.00") {
		t.Fatalf("totals row: %q", lines[5])
	}
	if lines[len(lines)-1] != "Challenge: Advent of Code 2024, Iterations: 3" {
		t.Fatalf("footer: %q", lines[len(lines)-1])
	}
}

func TestRenderTableDeterministic(t *testing.T) {
	s := sampleSummary()
	a := RenderTable(s, "Problem", "X", 5)
	b := RenderTable(s, "Problem", "X", 5)
	if a != b {
		t.Fatalf("table rendering not deterministic")
	}
}

func TestSaveSummaryCreatesAnalysisDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis", "AoC_Run_Summary.txt")
	if err := SaveSummary(path, "table\n"); err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if string(b) != "table\n" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}
