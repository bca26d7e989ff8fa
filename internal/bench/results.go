package bench

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// MarshalResults returns canonical YAML bytes for a benchmark summary: keys
// sorted, two-space indent, stable across runs with the same inputs.
func MarshalResults(challengeID string, iterations int, s Summary) ([]byte, error) {
	rows := make([]any, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, map[string]any{
			"problem":  r.Problem,
			"avg_ms":   round2(r.AvgTime),
			"std_ms":   round2(r.StdTime),
			"time_pct": round2(r.TimePct),
			"avg_mb":   round2(r.AvgMem),
			"std_mb":   round2(r.StdMem),
			"mem_pct":  round2(r.MemPct),
			"lang":     r.Lang,
			"size_kb":  round2(r.SizeKB),
			"lines":    r.Lines,
		})
	}
	doc := map[string]any{
		"challenge_id": challengeID,
		"iterations":   iterations,
		"problems":     rows,
		"totals": map[string]any{
			"time_ms":   round2(s.Totals.Time),
			"time_std":  round2(s.Totals.TimeStd),
			"memory_mb": round2(s.Totals.Memory),
			"mem_std":   round2(s.Totals.MemStd),
			"size_kb":   round2(s.Totals.SizeKB),
			"lines":     s.Totals.Lines,
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(canonicalNode(doc)); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

// WriteResults writes canonical YAML results to path, creating parent
// directories.
func WriteResults(path, challengeID string, iterations int, s Summary) error {
	b, err := MarshalResults(challengeID, iterations, s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create analysis dir: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalarFrom(v any) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}

func canonicalNode(v any) *yaml.Node {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.MappingNode}
	case map[string]any:
		return canonicalMapNode(x)
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, it := range x {
			n.Content = append(n.Content, canonicalNode(it))
		}
		return n
	default:
		return scalarFrom(x)
	}
}

func canonicalMapNode(m map[string]any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	if len(m) == 0 {
		return n
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Content = append(n.Content, scalarNode(k), canonicalNode(m[k]))
	}
	return n
}
