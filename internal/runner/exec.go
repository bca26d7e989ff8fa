package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
	"time"
)

const (
	stderrCaptureMaxBytes = 8 * 1024
	termGrace             = 2 * time.Second
)

type limitedBuffer struct {
	max       int
	buf       bytes.Buffer
	truncated bool
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if b.max <= 0 {
		return n, nil
	}
	remain := b.max - b.buf.Len()
	if remain > 0 {
		if remain > len(p) {
			remain = len(p)
		}
		_, _ = b.buf.Write(p[:remain])
	}
	if len(p) > remain {
		b.truncated = true
	}
	return n, nil
}

func (b *limitedBuffer) String() string { return b.buf.String() }

type execResult struct {
	exitCode int
	duration time.Duration
	peakRSS  uint64 // bytes
	timedOut bool
	stderr   string
	errorMsg string
}

// runOnce starts argv, samples its peak RSS while it runs, and enforces the
// timeout with SIGTERM then SIGKILL after a grace period. Solution stdout is
// discarded: benchmarks measure, they do not validate answers.
func runOnce(argv []string, dir string, timeout time.Duration) (execResult, error) {
	if len(argv) == 0 {
		return execResult{}, errors.New("empty argv")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = io.Discard
	errBuf := &limitedBuffer{max: stderrCaptureMaxBytes}
	cmd.Stderr = errBuf
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		var ee *exec.Error
		if errors.As(err, &ee) {
			return execResult{exitCode: -1, errorMsg: fmt.Sprintf("program %s not found", argv[0])}, nil
		}
		return execResult{exitCode: -1, errorMsg: fmt.Sprintf("program %s start failed", argv[0])}, nil
	}

	sampler := startMemorySampler(cmd.Process.Pid)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var runErr error
	timedOut := false
	select {
	case runErr = <-done:
	case <-timer.C:
		timedOut = true
		signalProcess(cmd, syscall.SIGTERM)
		grace := time.NewTimer(termGrace)
		select {
		case runErr = <-done:
			grace.Stop()
		case <-grace.C:
			signalProcess(cmd, syscall.SIGKILL)
			runErr = <-done
		}
	}

	res := execResult{
		duration: time.Since(start),
		peakRSS:  sampler.stop(),
		timedOut: timedOut,
		stderr:   errBuf.String(),
	}
	if timedOut {
		res.exitCode = -2
		return res, nil
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.exitCode = exitErr.ExitCode()
			return res, nil
		}
		res.exitCode = -1
		res.errorMsg = fmt.Sprintf("program %s execution failed", argv[0])
		return res, nil
	}
	return res, nil
}

func signalProcess(cmd *exec.Cmd, sig syscall.Signal) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	pid := cmd.Process.Pid
	if pid > 0 {
		if err := syscall.Kill(-pid, sig); err == nil {
			return
		}
	}
	_ = cmd.Process.Signal(sig)
}
