// Command neoscout explores NASA's near-Earth object close approach data.
//
// The query subcommand filters close approaches by date, distance, velocity,
// diameter, and hazard marking, printing matches or writing them to a CSV or
// JSON file. Profiling flags on the root command let any run write pprof
// statistics, which is how the neobench driver profiles query workloads.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.neoscout.dev/neoscout/log"
	"go.neoscout.dev/neoscout/neo"
	"go.neoscout.dev/neoscout/profile"
	"go.neoscout.dev/neoscout/query"
	"go.neoscout.dev/neoscout/version"
	"go.neoscout.dev/neoscout/write"
)

// printLimit caps stdout output when no limit and no outfile are given.
const printLimit = 10

func main() {
	os.Exit(run())
}

func run() int {
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	// Created after flag parsing so the profiler sees the parsed values.
	var profiler *profile.Profiler

	rootCmd := &cobra.Command{
		Use:           "neoscout",
		Short:         "Explore near-Earth object close approaches",
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			profiler = profileCfg.NewProfiler()

			return profiler.Start()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newQueryCmd())

	for _, err := range []error{
		logCfg.RegisterCompletions(rootCmd),
		profileCfg.RegisterCompletions(rootCmd),
	} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	err := rootCmd.Execute()

	if profiler != nil {
		stopErr := profiler.Stop()
		if stopErr != nil {
			fmt.Fprintf(os.Stderr, "stop profiler: %v\n", stopErr)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)

		return 1
	}

	return 0
}

func newQueryCmd() *cobra.Command {
	queryCfg := query.NewConfig()

	var (
		neoFile string
		cadFile string
		outfile string
	)

	cmd := &cobra.Command{
		Use:   "query [flags]",
		Short: "Filter close approaches and print or export the matches",
		Long: `query loads the NASA close approach data set, selects the approaches
matching every given criterion, and either prints them or writes them to the
file named by --outfile (.csv or .json).`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runQuery(queryCfg, neoFile, cadFile, outfile)
		},
	}

	queryCfg.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&neoFile, "neofile", "data/neos.csv", "path to the NEO CSV export")
	cmd.Flags().StringVar(&cadFile, "cadfile", "data/cad.json", "path to the close approach JSON export")
	cmd.Flags().StringVar(&outfile, "outfile", "", "write matches to this file (.csv or .json) instead of printing")

	completionErr := queryCfg.RegisterCompletions(cmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	return cmd
}

func runQuery(cfg *query.Config, neoFile, cadFile, outfile string) error {
	filter, err := cfg.NewFilter()
	if err != nil {
		return err
	}

	// Printing without an explicit limit caps output; exports write every
	// match unless a limit was given.
	if outfile == "" && filter.Limit == 0 {
		filter.Limit = printLimit
	}

	db, err := neo.Load(neoFile, cadFile)
	if err != nil {
		return err
	}

	results := filter.Select(db.Approaches())

	slog.Debug("query complete",
		slog.Int("approaches", len(db.Approaches())),
		slog.Int("matches", len(results)))

	if outfile == "" {
		for _, ca := range results {
			fmt.Println(ca)
		}

		return nil
	}

	return write.ToFile(outfile, results)
}
