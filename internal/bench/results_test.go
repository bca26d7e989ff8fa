package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestMarshalResultsCanonical(t *testing.T) {
	s := sampleSummary()
	a, err := MarshalResults("AoC2024", 3, s)
	if err != nil {
		t.Fatalf("MarshalResults: %v", err)
	}
	b, err := MarshalResults("AoC2024", 3, s)
	if err != nil {
		t.Fatalf("MarshalResults: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("results not canonical:\n%s\n%s", a, b)
	}

	// Top-level keys come out sorted.
	text := string(a)
	if !strings.HasPrefix(text, "challenge_id: AoC2024\n") {
		t.Fatalf("unexpected leading key:\n%s", text)
	}
	idx := func(sub string) int { return strings.Index(text, sub) }
	if !(idx("challenge_id:") < idx("iterations:") && idx("iterations:") < idx("problems:") && idx("problems:") < idx("totals:")) {
		t.Fatalf("keys not sorted:\n%s", text)
	}
}

func TestMarshalResultsRoundTrips(t *testing.T) {
	b, err := MarshalResults("X", 1, sampleSummary())
	if err != nil {
		t.Fatalf("MarshalResults: %v", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	problems, ok := doc["problems"].([]any)
	if !ok || len(problems) != 2 {
		t.Fatalf("problems: %#v", doc["problems"])
	}
	first, _ := problems[0].(map[string]any)
	if first["lang"] != "py" || first["problem"] != 1 {
		t.Fatalf("first problem row: %#v", first)
	}
}

func TestWriteResults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis", "X_results.yaml")
	if err := WriteResults(path, "X", 2, sampleSummary()); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("results file missing: %v", err)
	}
}
