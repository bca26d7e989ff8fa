package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abbasmoosajee07/challenge-utils/internal/config"
	"github.com/abbasmoosajee07/challenge-utils/internal/lang"
)

// Candidate is one runnable solution file found under a problem folder.
type Candidate struct {
	Problem int
	Path    string // absolute path
	Rel     string // path relative to the challenge directory, slash-separated
	Lang    lang.Spec
}

// DiscoverOptions control solution discovery.
type DiscoverOptions struct {
	Dir         string // challenge directory
	Problems    []int
	Config      config.Config
	NoGitignore bool
	Filter      *LuaFilter // nil keeps every non-Alt file
}

// altPrefix marks alternate solutions that benchmarks skip by default.
const altPrefix = "Alt"

// Discover finds the solution files to benchmark. For every requested problem
// it expands the configured solution filename per supported language and
// keeps the files that exist, are not gitignored, do not carry the Alt prefix
// and pass the optional Lua predicate. Results are sorted by problem then
// path.
func Discover(opts DiscoverOptions) ([]Candidate, error) {
	absRoot, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, err
	}

	var out []Candidate
	for _, problem := range opts.Problems {
		folder, err := opts.Config.ProblemDir(problem)
		if err != nil {
			return nil, err
		}
		problemDir := filepath.Join(absRoot, folder)
		if _, err := os.Stat(problemDir); err != nil {
			continue // nothing scaffolded for this problem yet
		}

		for _, spec := range lang.Supported() {
			name, err := opts.Config.SolutionFileName(problem, spec.Ext)
			if err != nil {
				return nil, err
			}
			// The pattern may contain glob metacharacters; a literal
			// filename matches itself.
			matches, err := filepath.Glob(filepath.Join(problemDir, name))
			if err != nil {
				return nil, fmt.Errorf("bad solution pattern %q: %v", name, err)
			}
			for _, path := range matches {
				rel, err := filepath.Rel(absRoot, path)
				if err != nil {
					return nil, err
				}
				keep, err := keepCandidate(absRoot, rel, filepath.Base(path), opts)
				if err != nil {
					return nil, err
				}
				if !keep {
					continue
				}
				out = append(out, Candidate{
					Problem: problem,
					Path:    path,
					Rel:     filepath.ToSlash(rel),
					Lang:    spec,
				})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Problem != out[j].Problem {
			return out[i].Problem < out[j].Problem
		}
		return out[i].Rel < out[j].Rel
	})
	return out, nil
}

func keepCandidate(absRoot, rel, name string, opts DiscoverOptions) (bool, error) {
	if strings.HasPrefix(name, altPrefix) {
		return false, nil
	}
	if !opts.NoGitignore && matchIgnore(absRoot, rel, false) {
		return false, nil
	}
	if opts.Filter != nil {
		keep, err := opts.Filter.Keep(name, filepath.ToSlash(rel))
		if err != nil {
			return false, fmt.Errorf("discover: %v", err)
		}
		return keep, nil
	}
	return true, nil
}
