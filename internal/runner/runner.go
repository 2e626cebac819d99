// Package runner executes the instrumented RNAView binary and collects
// the profiling report each run leaves behind. One Run is one invocation
// against one input structure, with the activation signal pointed at a
// private temp file so parallel bench invocations cannot clobber each
// other's reports.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/OOAAHH/RNAView/internal/profile"
	"github.com/OOAAHH/RNAView/internal/report"
)

// Runner invokes one host binary with fixed extra arguments.
type Runner struct {
	// Binary is the path of the instrumented executable.
	Binary string
	// Args are passed before the input path on every run.
	Args []string
	// Dir is the working directory for runs; empty means inherit.
	Dir string
	// Timeout bounds a single run; zero means no bound.
	Timeout time.Duration
}

// Result is one completed run.
type Result struct {
	ID       string
	Input    string
	Report   *report.Report
	WallTime time.Duration
	Stderr   string
}

// Run executes the binary against input and parses the report it wrote.
// A run that exits non-zero, times out, or leaves no report is an error:
// the host's never-fail contract applies to the embedded recorder, not
// to the bench harness driving it.
func (r *Runner) Run(ctx context.Context, input string) (*Result, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	tmp, err := os.MkdirTemp("", "rnaprofile-run-")
	if err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	reportPath := filepath.Join(tmp, "profile.json")

	args := make([]string, 0, len(r.Args)+1)
	args = append(args, r.Args...)
	args = append(args, input)

	// #nosec G204 -- binary and args come from the bench config, not remote input
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), profile.EnvReportPath+"="+reportPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	wall := time.Since(start)

	if ctx.Err() != nil {
		return nil, fmt.Errorf("run %s: %w", input, ctx.Err())
	}
	if runErr != nil {
		return nil, fmt.Errorf("run %s: %w (stderr: %s)", input, runErr, truncateStderr(stderr.String()))
	}

	rep, err := report.Load(reportPath)
	if err != nil {
		return nil, fmt.Errorf("run %s produced no usable report: %w", input, err)
	}

	return &Result{
		ID:       uuid.NewString(),
		Input:    input,
		Report:   rep,
		WallTime: wall,
		Stderr:   stderr.String(),
	}, nil
}

func truncateStderr(s string) string {
	const max = 512
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
