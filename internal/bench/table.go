package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const tableRule = 95

// RenderTable renders the fixed-width run summary: one row per problem, a
// totals row, and a footer naming the challenge and iteration count.
func RenderTable(s Summary, problemTitle, challengeHeader string, iterations int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-10s %-10s %-8s %-10s %-10s %-8s %-10s %-10s %-6s\n",
		problemTitle, "Avg(ms)", "STD(ms)", "Time%", "Avg(MB)", "STD(MB)", "Mem%", "Lang", "Size(kB)", "Lines")
	b.WriteString(strings.Repeat("-", tableRule) + "\n")

	for _, r := range s.Rows {
		fmt.Fprintf(&b, "%-8d %-10.2f %-10.2f %-8.2f %-10.2f %-10.2f %-8.2f %-10s %-10.2f %-6d\n",
			r.Problem, r.AvgTime, r.StdTime, r.TimePct,
			r.AvgMem, r.StdMem, r.MemPct,
			r.Lang, r.SizeKB, r.Lines)
	}

	b.WriteString(strings.Repeat("-", tableRule) + "\n")
	fmt.Fprintf(&b, "%-8s %-10.2f %-10.2f %-8.2f %-10.2f %-10.2f %-8.2f %-10s %-10.2f %-6d\n",
		"Total", s.Totals.Time, s.Totals.TimeStd, 100.0,
		s.Totals.Memory, s.Totals.MemStd, 100.0,
		"", s.Totals.SizeKB, s.Totals.Lines)
	fmt.Fprintf(&b, "\nChallenge: %s, Iterations: %d\n", challengeHeader, iterations)
	return b.String()
}

// SaveSummary writes the rendered table, creating the parent directory.
func SaveSummary(path, table string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create analysis dir: %w", err)
	}
	return os.WriteFile(path, []byte(table), 0o644)
}
