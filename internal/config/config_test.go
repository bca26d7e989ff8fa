package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCfg(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	return p
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ChallengeID != "Challenge" || c.SolutionFile != "{challenge}Day{problem}.{ext}" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadMergesUserConfigOverDefaults(t *testing.T) {
	d := t.TempDir()
	writeCfg(t, d, DefaultFile, "{\n  configVersion: \"1\"\n  challengeId: \"AoC2024\"\n  challengeFolder: \"2024\"\n}\n")
	c, err := Load(d)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ChallengeID != "AoC2024" {
		t.Fatalf("challengeId not applied: %q", c.ChallengeID)
	}
	if c.ChallengeFolder != "2024" {
		t.Fatalf("challengeFolder not applied: %q", c.ChallengeFolder)
	}
	// Untouched fields keep defaults.
	if c.TextInput != "Day{problem}_input" {
		t.Fatalf("default lost: %q", c.TextInput)
	}
}

func TestLoadMissingRequiredField(t *testing.T) {
	d := t.TempDir()
	p := writeCfg(t, d, "bad.cue", "{\n  configVersion: \"1\"\n}\n")
	_, err := Load(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "missing required field: challengeId"
	if err.Error() != want {
		t.Fatalf("unexpected error\nwant: %s\n got: %s", want, err.Error())
	}
}

func TestLoadUnsupportedConfigVersion(t *testing.T) {
	d := t.TempDir()
	p := writeCfg(t, d, "v2.cue", "{\n  configVersion: \"2\"\n  challengeId: \"X\"\n}\n")
	_, err := Load(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "unsupported configVersion: \"2\" (supported: 1)"
	if err.Error() != want {
		t.Fatalf("unexpected error\nwant: %s\n got: %s", want, err.Error())
	}
}

func TestLoadRejectsNonCUE(t *testing.T) {
	d := t.TempDir()
	p := writeCfg(t, d, "challenge.json", "{}")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for non-cue config")
	}
}

func TestPatternExpansion(t *testing.T) {
	c := Defaults()
	c.ChallengeFolder = "2024"

	dir, err := c.ProblemDir(3)
	if err != nil {
		t.Fatalf("ProblemDir: %v", err)
	}
	if dir != "03" {
		t.Fatalf("ProblemDir = %q", dir)
	}

	sol, err := c.SolutionFileName(3, "py")
	if err != nil {
		t.Fatalf("SolutionFileName: %v", err)
	}
	if sol != "2024Day03.py" {
		t.Fatalf("SolutionFileName = %q", sol)
	}

	in, err := c.InputFileName(12)
	if err != nil {
		t.Fatalf("InputFileName: %v", err)
	}
	if in != "Day12_input" {
		t.Fatalf("InputFileName = %q", in)
	}
}

func TestPatternExpansionBadPlaceholder(t *testing.T) {
	c := Defaults()
	c.ProblemFolder = "{probem}"
	if _, err := c.ProblemDir(1); err == nil {
		t.Fatalf("expected error for typoed placeholder")
	}
}
