// Package runner discovers and executes challenge solution files, measuring
// wall time and peak memory per run.
package runner

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// Measurement is the outcome of one solution run.
type Measurement struct {
	Problem  int
	Lang     string // language extension, e.g. "py"
	File     string // path relative to the challenge directory
	TimeMs   float64
	MemoryMB float64
	Lines    int
	SizeKB   float64
}

// Runner executes solution candidates.
type Runner struct {
	Timeout time.Duration // per run; compile steps share the same budget
}

// Run compiles the candidate if its language needs it, executes it once and
// returns the measurement. Build artifacts are removed afterwards. A non-zero
// exit, timeout or missing interpreter is returned as an error; the caller
// decides whether to keep going.
func (r *Runner) Run(cand Candidate) (Measurement, error) {
	cmds, err := cand.Lang.CommandsFor(cand.Path)
	if err != nil {
		return Measurement{}, err
	}
	defer removeArtifacts(cmds.Cleanup)

	if len(cmds.Compile) > 0 {
		res, err := runOnce(cmds.Compile, "", r.Timeout)
		if err != nil {
			return Measurement{}, err
		}
		if failure := failureMessage(res); failure != "" {
			return Measurement{}, fmt.Errorf("compile %s: %s", cand.Rel, failure)
		}
	}

	res, err := runOnce(cmds.Run, "", r.Timeout)
	if err != nil {
		return Measurement{}, err
	}
	if failure := failureMessage(res); failure != "" {
		return Measurement{}, fmt.Errorf("run %s: %s", cand.Rel, failure)
	}

	return Measurement{
		Problem:  cand.Problem,
		Lang:     cand.Lang.Ext,
		File:     cand.Rel,
		TimeMs:   float64(res.duration) / float64(time.Millisecond),
		MemoryMB: float64(res.peakRSS) / (1024 * 1024),
		Lines:    fileLineCount(cand.Path),
		SizeKB:   fileSizeKB(cand.Path),
	}, nil
}

// failureMessage renders a run failure as a short diagnostic, or "" on
// success. The first stderr line is included when the program wrote one.
func failureMessage(res execResult) string {
	switch {
	case res.timedOut:
		return "timeout"
	case res.errorMsg != "":
		return res.errorMsg
	case res.exitCode != 0:
		msg := fmt.Sprintf("exit status %d", res.exitCode)
		if line := firstLine(res.stderr); line != "" {
			msg += ": " + line
		}
		return msg
	}
	return ""
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

func removeArtifacts(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}

// fileLineCount counts lines tolerantly: unreadable files report 0.
func fileLineCount(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()
	n := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		n++
	}
	return n
}

// fileSizeKB reports the file size in kilobytes, 0 when unreadable.
func fileSizeKB(path string) float64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return float64(info.Size()) / 1024
}
