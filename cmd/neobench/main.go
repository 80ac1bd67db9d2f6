// Command neobench profiles neoscout query workloads.
//
// It runs a fixed matrix of query invocations against the neoscout binary,
// each writing its own CPU profile (profile/file1.prof through
// profile/file10.prof by default), and reports per-invocation outcomes. A
// failing invocation never stops the batch; neobench exits non-zero when any
// invocation failed.
//
// A custom invocation matrix can be supplied with --plan; the schema
// subcommand prints the JSON Schema for plan files.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.neoscout.dev/neoscout/bench"
	"go.neoscout.dev/neoscout/log"
	"go.neoscout.dev/neoscout/output"
	"go.neoscout.dev/neoscout/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	logCfg := log.NewConfig()
	logCfg.Format = string(defaultLogFormat())

	var (
		target      string
		planFile    string
		workDir     string
		showOutput  bool
		skipProfile bool
	)

	rootCmd := &cobra.Command{
		Use:           "neobench [flags]",
		Short:         "Run the profiled query invocation matrix",
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, target, planFile, workDir, showOutput, skipProfile)
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().StringVar(&target, "target", "neoscout", "target binary to profile")
	rootCmd.Flags().StringVar(&planFile, "plan", "", "YAML plan file (default: the built-in ten-invocation matrix)")
	rootCmd.Flags().StringVar(&workDir, "dir", "", "working directory for invocations")
	rootCmd.Flags().BoolVar(&showOutput, "show-output", false, "stream child process output to stderr")
	rootCmd.Flags().BoolVar(&skipProfile, "no-profile", false, "run the matrix without injecting profile flags")

	rootCmd.AddCommand(newSchemaCmd())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)

		return 1
	}

	return 0
}

// defaultLogFormat picks a human-oriented format on a terminal and logfmt
// when output is redirected.
func defaultLogFormat() log.Format {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return log.FormatText
	}

	return log.FormatLogfmt
}

func runBench(cmd *cobra.Command, target, planFile, workDir string, showOutput, skipProfile bool) error {
	plan := bench.DefaultPlan()

	if planFile != "" {
		loaded, err := bench.LoadPlan(planFile)
		if err != nil {
			return err
		}

		plan = loaded
	}

	if plan.Target != "" {
		target = plan.Target
	}

	runner := bench.NewRunner(target)
	runner.Dir = workDir
	runner.InjectProfile = !skipProfile

	// Child output goes through a publisher so additional consumers can
	// subscribe without slowing the batch down.
	pub := output.NewPublisher()
	defer pub.Close() //nolint:errcheck // Close always returns nil.

	runner.Output = pub

	if showOutput {
		sub := pub.Subscribe()
		defer sub.Close()

		go func() {
			for chunk := range sub.C() {
				_, _ = os.Stderr.Write(chunk)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting bench run",
		slog.String("target", target),
		slog.Int("invocations", len(plan.Invocations)))

	report, err := runner.Run(ctx, plan)
	if err != nil {
		return err
	}

	slog.Info("bench run complete",
		slog.Int("invocations", len(report.Results)),
		slog.Int("failed", report.Failed()))

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d invocations failed", failed, len(report.Results))
	}

	return nil
}

func newSchemaCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for plan files",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(bench.PlanSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			out = append(out, '\n')

			var w io.Writer = os.Stdout

			if outPath != "" && outPath != "-" {
				f, createErr := os.Create(outPath) //nolint:gosec // Output path from CLI flag is expected.
				if createErr != nil {
					return fmt.Errorf("create output: %w", createErr)
				}
				defer f.Close() //nolint:errcheck // Best effort on output close.

				w = f
			}

			_, err = w.Write(out)
			if err != nil {
				return fmt.Errorf("write schema: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "output file path (- for stdout)")

	return cmd
}
