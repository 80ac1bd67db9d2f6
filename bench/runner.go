package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.neoscout.dev/neoscout/profile"
)

// Runner executes a [Plan] against a target binary, one invocation at a
// time, in listed order.
//
// Create instances with [NewRunner] and adjust fields before calling
// [Runner.Run].
type Runner struct {
	// Output receives the combined stdout and stderr of every child.
	// Defaults to [io.Discard].
	Output io.Writer

	// Logger records per-invocation progress. Defaults to [slog.Default].
	Logger *slog.Logger

	// Target is the binary to invoke.
	Target string

	// Dir is the working directory for children (empty = inherit). Profile
	// paths and outfile paths in invocation arguments resolve against it.
	Dir string

	// Subcommand is prepended to every invocation's arguments.
	// Defaults to ["query"].
	Subcommand []string

	// InjectProfile controls whether the profile output flag is added to
	// each invocation. Disable for targets without pprof flags.
	InjectProfile bool
}

// NewRunner creates a [Runner] for the given target binary with the query
// subcommand and profile injection enabled.
func NewRunner(target string) *Runner {
	return &Runner{
		Target:        target,
		Subcommand:    []string{"query"},
		InjectProfile: true,
		Output:        io.Discard,
	}
}

// Result records the outcome of one invocation.
type Result struct {
	Err        error
	Invocation Invocation
	Duration   time.Duration

	// ExitCode is the child's exit code, -1 when the child failed to start
	// or was terminated by a signal.
	ExitCode int
}

// OK reports whether the invocation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report collects the results of a full plan run, in invocation order.
type Report struct {
	Results []Result
}

// Failed returns the number of failed invocations.
func (r Report) Failed() int {
	n := 0

	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}

	return n
}

// Run executes every invocation of the plan sequentially. Invocation
// failures are recorded in the report and do not stop the batch; Run itself
// returns an error only for an invalid plan, an unwritable profile
// directory, or a canceled context. On cancellation the partial report is
// returned alongside the context error.
func (rn *Runner) Run(ctx context.Context, plan Plan) (Report, error) {
	err := plan.Validate()
	if err != nil {
		return Report{}, err
	}

	err = rn.ensureProfileDirs(plan)
	if err != nil {
		return Report{}, err
	}

	logger := rn.Logger
	if logger == nil {
		logger = slog.Default()
	}

	report := Report{Results: make([]Result, 0, len(plan.Invocations))}

	for i, inv := range plan.Invocations {
		if ctx.Err() != nil {
			return report, fmt.Errorf("run aborted after %d of %d invocations: %w",
				i, len(plan.Invocations), ctx.Err())
		}

		res := rn.runOne(ctx, inv)
		report.Results = append(report.Results, res)

		attrs := []any{
			slog.Int("invocation", i+1),
			slog.String("profile", inv.Profile),
			slog.Duration("duration", res.Duration),
			slog.Int("exit_code", res.ExitCode),
		}

		if res.OK() {
			logger.Info("invocation complete", attrs...)
		} else {
			// Record and continue; the batch never aborts on a failed child.
			logger.Warn("invocation failed", append(attrs, slog.Any("error", res.Err))...)
		}
	}

	return report, nil
}

// runOne executes a single invocation, blocking until the child exits.
func (rn *Runner) runOne(ctx context.Context, inv Invocation) Result {
	args := append([]string{}, rn.Subcommand...)
	args = append(args, inv.Args...)

	if rn.InjectProfile {
		args = append(args, profile.Args(inv.Profile)...)
	}

	cmd := exec.CommandContext(ctx, rn.Target, args...) //nolint:gosec // Target and args come from the plan.
	cmd.Dir = rn.Dir

	out := rn.Output
	if out == nil {
		out = io.Discard
	}

	cmd.Stdout = out
	cmd.Stderr = out

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	res := Result{
		Invocation: inv,
		Duration:   duration,
	}

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		res.Err = fmt.Errorf("invocation %s: %w", inv.Profile, err)
	default:
		res.ExitCode = -1
		res.Err = fmt.Errorf("invocation %s: %w", inv.Profile, err)
	}

	return res
}

// ensureProfileDirs creates the parent directory of every profile path so
// children do not fail on a missing output directory.
func (rn *Runner) ensureProfileDirs(plan Plan) error {
	seen := map[string]bool{}

	for _, inv := range plan.Invocations {
		dir := filepath.Dir(inv.Profile)
		if !filepath.IsAbs(dir) && rn.Dir != "" {
			dir = filepath.Join(rn.Dir, dir)
		}

		if dir == "." || seen[dir] {
			continue
		}

		seen[dir] = true

		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return fmt.Errorf("create profile directory: %w", err)
		}
	}

	return nil
}
