// Package input implements the canonical solve-script runtime shared by every
// generated solution stub: resolve which input file to read, read it as an
// ordered sequence of lines, and print the data followed by the language
// banner. Trailing whitespace is stripped from each line so output is
// identical across languages and platforms.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Locate resolves the input path. A non-empty override wins; otherwise the
// default filename is resolved relative to dir. No existence check happens
// here: reading is where missing files are reported.
func Locate(dir, defaultName, override string) string {
	if override != "" {
		return override
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, defaultName)
}

// ReadLines reads path fully and returns its lines in order, with trailing
// whitespace stripped. A final newline does not produce an empty last line.
// An empty file yields no lines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	raw := strings.Split(string(data), "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines, nil
}

// Banner returns the fixed two-line greeting naming the language.
func Banner(language string) string {
	return "Hello, World!\n-From " + language
}

// Fprint writes the data lines followed by a blank line and the banner.
// The banner prints regardless of how many lines were read.
func Fprint(w io.Writer, lines []string, language string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintf(w, "\n%s\n", Banner(language))
}
