// Package bench drives a fixed batch of profiled query invocations.
//
// A [Plan] is an ordered list of [Invocation] records, each pairing a
// profiler output path with the arguments for one run of the target's query
// command. [DefaultPlan] is the built-in ten-invocation matrix covering the
// full query flag surface; [LoadPlan] reads a custom matrix from YAML.
//
// A [Runner] executes the plan strictly in listed order, one invocation at a
// time, injecting the profile output flag into each child so the target
// writes its own pprof statistics file. A failing invocation never aborts
// the batch: its exit code and error are recorded in the [Report] and the
// runner moves on.
//
//	runner := bench.NewRunner("neoscout")
//	report, err := runner.Run(ctx, bench.DefaultPlan())
//	if err != nil {
//	    return err
//	}
//	if report.Failed() > 0 {
//	    // Per-invocation details are in report.Results.
//	}
package bench
