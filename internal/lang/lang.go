// Package lang holds the per-language execution table: how to scaffold,
// compile, run and clean up a solution file, and how to probe for the
// language's toolchain.
package lang

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/abbasmoosajee07/challenge-utils/internal/template"
)

// Spec describes one language. Argv templates use {file} (source path),
// {exe} (source path minus extension), {dir} (source directory) and
// {stem} (source filename minus extension) placeholders.
type Spec struct {
	Name      string
	Ext       string
	Template  string   // embedded template filename; empty when not scaffoldable
	Compile   []string // empty for interpreted languages
	Run       []string
	Cleanup   []string // artifact path templates removed after a run
	ToolCheck []string
}

// Compiled reports whether running requires a compile step first.
func (s Spec) Compiled() bool { return len(s.Compile) > 0 }

// Scaffoldable reports whether a solution stub can be generated.
func (s Spec) Scaffoldable() bool { return s.Template != "" }

// Commands holds argv rendered for a concrete source file.
type Commands struct {
	Compile []string
	Run     []string
	Cleanup []string // artifact paths, not argv
}

// CommandsFor renders the language's argv templates for a source file.
func (s Spec) CommandsFor(file string) (Commands, error) {
	ext := filepath.Ext(file)
	vars := map[string]string{
		"file": file,
		"exe":  strings.TrimSuffix(file, ext),
		"dir":  filepath.Dir(file),
		"stem": strings.TrimSuffix(filepath.Base(file), ext),
	}
	var c Commands
	var err error
	if len(s.Compile) > 0 {
		if c.Compile, err = template.RenderArgs(s.Compile, vars); err != nil {
			return Commands{}, err
		}
	}
	if c.Run, err = template.RenderArgs(s.Run, vars); err != nil {
		return Commands{}, err
	}
	if len(s.Cleanup) > 0 {
		if c.Cleanup, err = template.RenderArgs(s.Cleanup, vars); err != nil {
			return Commands{}, err
		}
		for i := range c.Cleanup {
			c.Cleanup[i] = filepath.FromSlash(c.Cleanup[i])
		}
	}
	return c, nil
}

var registry = map[string]Spec{
	"python": {
		Name: "python", Ext: "py", Template: "python_template.py.tmpl",
		Run:       []string{"python", "{file}"},
		ToolCheck: []string{"python", "--version"},
	},
	"ruby": {
		Name: "ruby", Ext: "rb", Template: "ruby_template.rb.tmpl",
		Run:       []string{"ruby", "{file}"},
		ToolCheck: []string{"ruby", "--version"},
	},
	"julia": {
		Name: "julia", Ext: "jl", Template: "julia_template.jl.tmpl",
		Run:       []string{"julia", "{file}"},
		ToolCheck: []string{"julia", "--version"},
	},
	"js": {
		Name: "js", Ext: "js", Template: "js_template.js.tmpl",
		Run:       []string{"node", "{file}"},
		ToolCheck: []string{"node", "--version"},
	},
	"go": {
		Name: "go", Ext: "go", Template: "go_template.go.tmpl",
		Run:       []string{"go", "run", "{file}"},
		ToolCheck: []string{"go", "version"},
	},
	"haskell": {
		Name: "haskell", Ext: "hs", Template: "haskell_template.hs.tmpl",
		Run:       []string{"runhaskell", "{file}"},
		ToolCheck: []string{"ghc", "--version"},
	},
	"c": {
		Name: "c", Ext: "c", Template: "c_template.c.tmpl",
		Compile:   []string{"gcc", "{file}", "-o", "{exe}"},
		Run:       []string{"{exe}"},
		Cleanup:   []string{"{exe}"},
		ToolCheck: []string{"gcc", "--version"},
	},
	"cpp": {
		Name: "cpp", Ext: "cpp", Template: "cpp_template.cpp.tmpl",
		Compile:   []string{"g++", "{file}", "-o", "{exe}"},
		Run:       []string{"{exe}"},
		Cleanup:   []string{"{exe}"},
		ToolCheck: []string{"g++", "--version"},
	},
	"java": {
		Name: "java", Ext: "java", Template: "java_template.java.tmpl",
		Compile:   []string{"javac", "{file}"},
		Run:       []string{"java", "-cp", "{dir}", "{stem}"},
		Cleanup:   []string{"{dir}/{stem}.class"},
		ToolCheck: []string{"javac", "-version"},
	},
	"rust": {
		Name: "rust", Ext: "rs", Template: "rust_template.rs.tmpl",
		Compile:   []string{"rustc", "{file}", "-o", "{exe}"},
		Run:       []string{"{exe}"},
		Cleanup:   []string{"{exe}"},
		ToolCheck: []string{"rustc", "--version"},
	},

	// Runnable but not scaffolded.
	"typescript": {
		Name: "typescript", Ext: "ts",
		Run:       []string{"ts-node", "{file}"},
		ToolCheck: []string{"ts-node", "--version"},
	},
	"perl": {
		Name: "perl", Ext: "pl",
		Run:       []string{"perl", "{file}"},
		ToolCheck: []string{"perl", "--version"},
	},
	"php": {
		Name: "php", Ext: "php",
		Run:       []string{"php", "{file}"},
		ToolCheck: []string{"php", "--version"},
	},
	"lua": {
		Name: "lua", Ext: "lua",
		Run:       []string{"lua", "{file}"},
		ToolCheck: []string{"lua", "-v"},
	},
	"shell": {
		Name: "shell", Ext: "sh",
		Run:       []string{"bash", "{file}"},
		ToolCheck: []string{"bash", "--version"},
	},
	"r": {
		Name: "r", Ext: "r",
		Run:       []string{"Rscript", "{file}"},
		ToolCheck: []string{"Rscript", "--version"},
	},
}

var byExt = func() map[string]string {
	m := make(map[string]string, len(registry))
	for name, s := range registry {
		m[s.Ext] = name
	}
	return m
}()

// Lookup finds a language by name or by extension (with or without dot).
func Lookup(name string) (Spec, bool) {
	key := strings.ToLower(strings.TrimPrefix(name, "."))
	if s, ok := registry[key]; ok {
		return s, true
	}
	if canonical, ok := byExt[key]; ok {
		return registry[canonical], true
	}
	return Spec{}, false
}

// Names returns all registered language names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Supported returns the languages that have a solution template, sorted.
func Supported() []Spec {
	var out []Spec
	for _, n := range Names() {
		if s := registry[n]; s.Scaffoldable() {
			out = append(out, s)
		}
	}
	return out
}

// All returns every registered language, sorted by name.
func All() []Spec {
	out := make([]Spec, 0, len(registry))
	for _, n := range Names() {
		out = append(out, registry[n])
	}
	return out
}
