package bench

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// parseProblems expands a problems spec into a sorted list of unique problem
// numbers. Accepted forms: a single number "7", a range "1-25", a comma list
// "1,3,5" whose items may themselves be ranges ("1-3,9").
func parseProblems(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("invalid --problems: empty")
	}

	seen := map[int]bool{}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		lo, hi, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		for p := lo; p <= hi; p++ {
			seen[p] = true
		}
	}

	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Ints(out)
	return out, nil
}

func parseRange(part string) (int, int, error) {
	if lo, hi, ok := strings.Cut(part, "-"); ok {
		a, errA := parseProblem(lo)
		b, errB := parseProblem(hi)
		if errA != nil || errB != nil || a > b {
			return 0, 0, fmt.Errorf("invalid --problems range: %q", part)
		}
		return a, b, nil
	}
	p, err := parseProblem(part)
	if err != nil {
		return 0, 0, err
	}
	return p, p, nil
}

func parseProblem(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 {
		return 0, fmt.Errorf("invalid problem number: %q", s)
	}
	return p, nil
}
