// Package config loads the challenge configuration from a CUE file and
// expands its filename patterns. Patterns use {problem} (zero-padded problem
// number), {challenge} (challenge folder) and {ext} (language extension)
// placeholders.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
)

// DefaultFile is the config filename looked up inside a challenge directory.
const DefaultFile = "challenge.cue"

// Config holds the resolved challenge configuration.
type Config struct {
	ConfigVersion   string
	ChallengeID     string
	ProblemTitle    string
	ChallengeFolder string
	ProblemFolder   string
	SolutionFile    string
	TextInput       string
	ChallengeHeader string
	ScriptHeader    string
	PlotColor       string
}

// Defaults returns the bundled default configuration, used when no user
// config file exists. User config values override defaults field by field.
func Defaults() Config {
	return Config{
		ConfigVersion:   "1",
		ChallengeID:     "Challenge",
		ProblemTitle:    "Problem",
		ChallengeFolder: "Challenge",
		ProblemFolder:   "{problem}",
		SolutionFile:    "{challenge}Day{problem}.{ext}",
		TextInput:       "Day{problem}_input",
		ChallengeHeader: "Challenge",
		PlotColor:       "#CE7004",
		ScriptHeader: "Challenge Code - Problem {problem}, Year {id}\n" +
			"Solution Started: {month} {day}, {year}\n" +
			"Puzzle Link: https://challengecode.com/{id}/day/{problem_no}\n" +
			"Solution by: {author}\n" +
			"Brief: [Code/Problem Description]\n",
	}
}

// Load reads a challenge config. Path may name a .cue file or a directory
// containing challenge.cue; an empty path means the current directory. A
// missing config file is not an error: the bundled defaults apply.
func Load(path string) (Config, error) {
	if path == "" {
		path = "."
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFile)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return parseFile(path)
}

// parseFile validates and extracts the config from a CUE file, merging over
// the defaults.
func parseFile(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "challengeId"); err != nil {
		return Config{}, err
	}

	c := Defaults()
	if err := decodeString(v, "configVersion", &c.ConfigVersion); err != nil {
		return Config{}, err
	}
	if c.ConfigVersion != supportedConfigVersion {
		return Config{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", c.ConfigVersion, supportedConfigVersion)
	}
	if err := decodeString(v, "challengeId", &c.ChallengeID); err != nil {
		return Config{}, err
	}

	optionalString(v, "problemTitle", &c.ProblemTitle)
	optionalString(v, "challengeFolder", &c.ChallengeFolder)
	optionalString(v, "problemFolder", &c.ProblemFolder)
	optionalString(v, "solutionFile", &c.SolutionFile)
	optionalString(v, "textInput", &c.TextInput)
	optionalString(v, "challengeHeader", &c.ChallengeHeader)
	optionalString(v, "scriptHeader", &c.ScriptHeader)
	optionalString(v, "plotColor", &c.PlotColor)
	return c, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}
