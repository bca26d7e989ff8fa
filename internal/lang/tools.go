package lang

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// Tool check statuses.
const (
	StatusOK      = "[OK]"
	StatusMissing = "[NO]"
	StatusSkip    = "[SKIP]"
	StatusTimeout = "[TO]"
	StatusError   = "[ERR]"
)

// CheckResult is the outcome of probing one language's toolchain.
type CheckResult struct {
	Lang   string
	Status string
	Detail string // first line of the version output, or a short reason
	Path   string // resolved executable path, or "N/A"
}

// CheckTool probes the toolchain for one language. When supportedOnly is set,
// languages without a solution template are skipped rather than probed.
func CheckTool(ctx context.Context, s Spec, supportedOnly bool, timeout time.Duration) CheckResult {
	if supportedOnly && !s.Scaffoldable() {
		return CheckResult{Lang: s.Name, Status: StatusSkip, Detail: "Skipped (not supported)", Path: "N/A"}
	}
	if len(s.ToolCheck) == 0 {
		return CheckResult{Lang: s.Name, Status: StatusError, Detail: "No tool check configured", Path: "N/A"}
	}
	tool := s.ToolCheck[0]
	path, err := exec.LookPath(tool)
	if err != nil {
		return CheckResult{Lang: s.Name, Status: StatusMissing, Detail: "Not found", Path: "Not found"}
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	cmd := exec.CommandContext(cctx, tool, s.ToolCheck[1:]...)
	out, err := cmd.CombinedOutput()
	if cctx.Err() != nil && errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return CheckResult{Lang: s.Name, Status: StatusTimeout, Detail: "Timeout checking version", Path: path}
	}
	if err != nil {
		return CheckResult{Lang: s.Name, Status: StatusMissing, Detail: "Not available", Path: path}
	}
	detail := strings.TrimSpace(string(out))
	if i := strings.IndexByte(detail, '\n'); i >= 0 {
		detail = detail[:i]
	}
	if detail == "" {
		detail = "available"
	}
	return CheckResult{Lang: s.Name, Status: StatusOK, Detail: detail, Path: path}
}

// CheckAll probes every given language on a worker pool and returns results
// in the input order.
func CheckAll(ctx context.Context, specs []Spec, supportedOnly bool, workers int, timeout time.Duration) []CheckResult {
	if workers < 1 {
		workers = 1
	}
	results := runIndexedParallel(len(specs), workers, func(idx int) indexedCheck {
		return indexedCheck{idx: idx, res: CheckTool(ctx, specs[idx], supportedOnly, timeout)}
	})
	out := make([]CheckResult, len(specs))
	for _, r := range results {
		out[r.idx] = r.res
	}
	return out
}

type indexedCheck struct {
	idx int
	res CheckResult
}
