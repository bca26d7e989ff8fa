package bench

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/abbasmoosajee07/challenge-utils/internal/bench"
	"github.com/abbasmoosajee07/challenge-utils/internal/config"
	"github.com/abbasmoosajee07/challenge-utils/internal/lang"
	"github.com/abbasmoosajee07/challenge-utils/internal/runner"
	"github.com/spf13/cobra"
)

var (
	flagProblems    string
	flagIterations  int
	flagConfig      string
	flagDir         string
	flagSave        bool
	flagNoSave      bool
	flagTimeoutMs   int
	flagWorkers     int
	flagFilter      string
	flagNoGitignore bool
)

// Cmd implements `challenge bench`: run every discovered solution for the
// requested problems N times, print the summary table and save the results.
// Individual script failures are reported and skipped; the command fails
// only when nothing ran successfully.
var Cmd = &cobra.Command{
	Use:           "bench",
	Short:         "Benchmark solutions and render the run summary",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagIterations < 1 {
			return fmt.Errorf("invalid --iterations: must be at least 1")
		}
		problems, err := parseProblems(flagProblems)
		if err != nil {
			return err
		}

		cfgPath := flagConfig
		if cfgPath == "" {
			cfgPath = flagDir
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		var filter *runner.LuaFilter
		if flagFilter != "" {
			filter, err = runner.NewLuaFilter(flagFilter)
			if err != nil {
				return err
			}
		}

		cands, err := runner.Discover(runner.DiscoverOptions{
			Dir:         flagDir,
			Problems:    problems,
			Config:      cfg,
			NoGitignore: flagNoGitignore,
			Filter:      filter,
		})
		if err != nil {
			return err
		}
		if len(cands) == 0 {
			return fmt.Errorf("no solution files found for problems %s", flagProblems)
		}
		cands = withAvailableTools(cmd.Context(), cmd.OutOrStdout(), cands)
		if len(cands) == 0 {
			return fmt.Errorf("no runnable solutions: all toolchains unavailable")
		}

		out := cmd.OutOrStdout()
		r := &runner.Runner{Timeout: time.Duration(flagTimeoutMs) * time.Millisecond}
		collector := bench.NewCollector()
		for iter := 1; iter <= flagIterations; iter++ {
			fmt.Fprintf(out, "Iteration %d/%d\n", iter, flagIterations)
			for _, cand := range cands {
				fmt.Fprintf(out, "Running script: %s\n", cand.Rel)
				m, err := r.Run(cand)
				if err != nil {
					fmt.Fprintf(out, "Error executing %s: %v\n", cand.Rel, err)
					continue
				}
				collector.Record(m)
			}
		}
		if collector.Len() == 0 {
			return fmt.Errorf("no solutions ran successfully")
		}

		summary := collector.Summarize()
		table := bench.RenderTable(summary, cfg.ProblemTitle, cfg.ChallengeHeader, flagIterations)
		fmt.Fprint(out, table)

		if flagSave && !flagNoSave {
			dir := filepath.Join(flagDir, "analysis")
			summaryPath := filepath.Join(dir, cfg.ChallengeID+"_Run_Summary.txt")
			if err := bench.SaveSummary(summaryPath, table); err != nil {
				return err
			}
			resultsPath := filepath.Join(dir, cfg.ChallengeID+"_results.yaml")
			if err := bench.WriteResults(resultsPath, cfg.ChallengeID, flagIterations, summary); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved summary to %s\n", summaryPath)
		}
		return nil
	},
}

// withAvailableTools drops candidates whose language toolchain is missing,
// probing the distinct toolchains on a worker pool first. The timed runs
// themselves stay sequential.
func withAvailableTools(ctx context.Context, out io.Writer, cands []runner.Candidate) []runner.Candidate {
	if ctx == nil {
		ctx = context.Background()
	}
	specs := make([]lang.Spec, 0, len(cands))
	seen := map[string]bool{}
	for _, c := range cands {
		if !seen[c.Lang.Ext] {
			seen[c.Lang.Ext] = true
			specs = append(specs, c.Lang)
		}
	}
	results := lang.CheckAll(ctx, specs, false, flagWorkers, 10*time.Second)
	available := map[string]bool{}
	for i, res := range results {
		available[specs[i].Ext] = res.Status == lang.StatusOK
	}

	kept := cands[:0]
	for _, c := range cands {
		if !available[c.Lang.Ext] {
			fmt.Fprintf(out, "Skipping %s: %s toolchain not available\n", c.Rel, c.Lang.Name)
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func init() {
	Cmd.Flags().StringVar(&flagProblems, "problems", "1-25", "Problems to run: a range like 1-25 or a comma list like 1,3,5")
	Cmd.Flags().IntVarP(&flagIterations, "iterations", "n", 3, "Number of runs per solution")
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (.cue)")
	Cmd.Flags().StringVar(&flagDir, "dir", ".", "Challenge directory")
	Cmd.Flags().BoolVar(&flagSave, "save", true, "Save the summary and results under analysis/")
	Cmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not save the summary or results")
	Cmd.Flags().IntVar(&flagTimeoutMs, "timeout-ms", 300000, "Per-run timeout in milliseconds")
	Cmd.Flags().IntVar(&flagWorkers, "workers", 4, "Workers for the toolchain pre-flight check")
	Cmd.Flags().StringVar(&flagFilter, "filter", "", "Inline Lua predicate over candidate files (globals: name, path)")
	Cmd.Flags().BoolVar(&flagNoGitignore, "no-gitignore", false, "Ignore .gitignore rules during discovery")
}
