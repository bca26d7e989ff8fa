// Package scaffold creates the files for a new challenge problem: the
// problem folder, empty input text files, and a solution stub rendered from
// the embedded per-language template. Existing files are never overwritten.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abbasmoosajee07/challenge-utils/internal/config"
	"github.com/abbasmoosajee07/challenge-utils/internal/lang"
	"github.com/abbasmoosajee07/challenge-utils/internal/template"
)

// Builder scaffolds problem files inside a challenge directory.
type Builder struct {
	Author string
	Dir    string
	Config config.Config
	Log    io.Writer        // nil silences logging
	Now    func() time.Time // nil means time.Now

	headerPrinted bool
}

// Created describes the files a CreateFiles call resolved.
type Created struct {
	ProblemDir string
	Script     string
	Inputs     []string
}

// CreateFiles creates the problem folder, `inputs` empty text files and the
// solution stub for the given language. Files that already exist are left
// untouched and logged as skipped.
func (b *Builder) CreateFiles(problem int, language string, inputs int) (Created, error) {
	spec, ok := lang.Lookup(language)
	if !ok || !spec.Scaffoldable() {
		return Created{}, fmt.Errorf("no template for language: %s", language)
	}

	problemDir, err := b.createProblemDir(problem)
	if err != nil {
		return Created{}, err
	}

	inputFiles, err := b.createTextFiles(problemDir, problem, inputs)
	if err != nil {
		return Created{}, err
	}

	script, err := b.createScript(problemDir, problem, spec, inputFiles[0])
	if err != nil {
		return Created{}, err
	}

	return Created{ProblemDir: problemDir, Script: script, Inputs: inputFiles}, nil
}

func (b *Builder) createProblemDir(problem int) (string, error) {
	name, err := b.Config.ProblemDir(problem)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(b.Dir, name)
	if _, err := os.Stat(dir); err == nil {
		b.log(dir, "Folder Exists")
		return dir, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create problem folder: %w", err)
	}
	b.log(dir, "Folder Created")
	return dir, nil
}

// createTextFiles writes the empty input files. With more than one input the
// files are suffixed _p1, _p2, ... and the first one becomes the default the
// stub reads.
func (b *Builder) createTextFiles(problemDir string, problem, count int) ([]string, error) {
	base, err := b.Config.InputFileName(problem)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		count = 1
	}
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		suffix := ""
		if count > 1 {
			suffix = fmt.Sprintf("_p%d", i)
		}
		name := base + suffix + ".txt"
		path := filepath.Join(problemDir, name)
		if _, err := os.Stat(path); err == nil {
			b.log(path, "Text File Exists")
		} else {
			if err := os.WriteFile(path, nil, 0o644); err != nil {
				return nil, fmt.Errorf("create input file: %w", err)
			}
			b.log(path, "Text File Created")
		}
		names = append(names, name)
	}
	return names, nil
}

func (b *Builder) createScript(problemDir string, problem int, spec lang.Spec, inputFile string) (string, error) {
	fileName, err := b.Config.SolutionFileName(problem, spec.Ext)
	if err != nil {
		return "", err
	}
	path := filepath.Join(problemDir, fileName)
	if _, err := os.Stat(path); err == nil {
		b.log(path, "Script Skipped")
		return path, nil
	}

	tpl, err := templateContent(spec.Template)
	if err != nil {
		return "", err
	}
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	content := template.Render(tpl, map[string]string{
		"header_text":      b.header(problem),
		"file_name":        stem,
		"text_placeholder": inputFile,
	})
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write script: %w", err)
	}
	b.log(path, spec.Name+" Script Created")
	return path, nil
}

// header renders the configured script header for a problem.
func (b *Builder) header(problem int) string {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	t := now()
	return template.Render(b.Config.ScriptHeader, map[string]string{
		"problem":    config.PadProblem(problem),
		"problem_no": fmt.Sprintf("%d", problem),
		"id":         b.Config.ChallengeID,
		"author":     b.Author,
		"month":      t.Month().String(),
		"day":        fmt.Sprintf("%d", t.Day()),
		"year":       fmt.Sprintf("%d", t.Year()),
	})
}

// log prints a path relative to the challenge folder, printing the challenge
// folder header once per builder.
func (b *Builder) log(path, message string) {
	if b.Log == nil {
		return
	}
	if !b.headerPrinted {
		fmt.Fprintf(b.Log, "[Challenge Folder] %s\n", b.Dir)
		b.headerPrinted = true
	}
	rel, err := filepath.Rel(b.Dir, path)
	if err != nil {
		rel = path
	}
	fmt.Fprintf(b.Log, "[%s] %s\n", message, rel)
}
