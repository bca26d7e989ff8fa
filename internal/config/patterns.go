package config

import (
	"fmt"

	"github.com/abbasmoosajee07/challenge-utils/internal/template"
)

// PadProblem formats a problem number with two-digit zero padding, the way
// folders and filenames name problems. The puzzle link keeps the bare number.
func PadProblem(problem int) string {
	return fmt.Sprintf("%02d", problem)
}

// ProblemDir expands the problem folder pattern for a problem number.
func (c Config) ProblemDir(problem int) (string, error) {
	return template.RenderStrict(c.ProblemFolder, map[string]string{
		"problem":   PadProblem(problem),
		"challenge": c.ChallengeFolder,
	})
}

// SolutionFileName expands the solution filename pattern for a problem number
// and language extension.
func (c Config) SolutionFileName(problem int, ext string) (string, error) {
	return template.RenderStrict(c.SolutionFile, map[string]string{
		"problem":   PadProblem(problem),
		"challenge": c.ChallengeFolder,
		"ext":       ext,
	})
}

// InputFileName expands the base input filename pattern (no .txt suffix).
func (c Config) InputFileName(problem int) (string, error) {
	return template.RenderStrict(c.TextInput, map[string]string{
		"problem":   PadProblem(problem),
		"challenge": c.ChallengeFolder,
	})
}
