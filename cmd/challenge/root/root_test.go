package root

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShowPrintsLinesAndBanner(t *testing.T) {
	dir := t.TempDir()
	content := "3   4\n4   3   \n\n2   5\n"
	if err := os.WriteFile(filepath.Join(dir, "input.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := runCLI(t, "show", "--dir", dir, "--lang", "Go")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	want := "3   4\n4   3\n\n2   5\n\nHello, World!\n-From Go\n"
	if out != want {
		t.Fatalf("show output = %q, want %q", out, want)
	}
}

func TestShowPositionalOverride(t *testing.T) {
	dir := t.TempDir()
	alt := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(alt, []byte("only line\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := runCLI(t, "show", "--dir", dir, "--lang", "Python", alt)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.HasPrefix(out, "only line\n") || !strings.Contains(out, "-From Python") {
		t.Fatalf("show output = %q", out)
	}
}

func TestShowMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "show", "--dir", dir)
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if !strings.Contains(err.Error(), "unable to open file") {
		t.Fatalf("error = %v", err)
	}
}

func TestNewScaffoldsProblem(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "new", "-p", "3", "-l", "python", "--dir", dir, "-a", "tester")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	problemDir := filepath.Join(dir, "03")
	for _, f := range []string{"Day03_input.txt", "ChallengeDay03.py"} {
		if _, err := os.Stat(filepath.Join(problemDir, f)); err != nil {
			t.Fatalf("missing %s: %v", f, err)
		}
	}
	if !strings.Contains(out, "[Challenge Folder]") || !strings.Contains(out, "Created all necessary files") {
		t.Fatalf("new output = %q", out)
	}

	script, err := os.ReadFile(filepath.Join(problemDir, "ChallengeDay03.py"))
	if err != nil {
		t.Fatalf("read script: %v", err)
	}
	if !strings.Contains(string(script), "Solution by: tester") {
		t.Fatalf("script header missing author:\n%s", script)
	}
}

func TestNewRejectsUnknownLanguage(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "new", "-p", "1", "-l", "cobol", "--dir", dir)
	if err == nil || !strings.Contains(err.Error(), "no template for language: cobol") {
		t.Fatalf("error = %v", err)
	}
}
