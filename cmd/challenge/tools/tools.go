package tools

import (
	"fmt"
	"time"

	"github.com/abbasmoosajee07/challenge-utils/internal/lang"
	"github.com/spf13/cobra"
)

var (
	flagAll     bool
	flagWorkers int
	flagTimeout int
)

// Cmd implements `challenge tools`: probe every language toolchain and print
// an availability report. By default only languages with a solution template
// are probed; --all checks the full table.
var Cmd = &cobra.Command{
	Use:           "tools",
	Short:         "Report which language toolchains are installed",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		specs := lang.All()
		timeout := time.Duration(flagTimeout) * time.Millisecond
		results := lang.CheckAll(cmd.Context(), specs, !flagAll, flagWorkers, timeout)

		fmt.Fprintln(out, "Language Tool Check")
		fmt.Fprintln(out, "===================")
		ok := 0
		for _, r := range results {
			fmt.Fprintf(out, "%-7s %-12s %-40s %s\n", r.Status, r.Lang, r.Detail, r.Path)
			if r.Status == lang.StatusOK {
				ok++
			}
		}
		fmt.Fprintf(out, "\nSummary: %d/%d toolchains available\n", ok, len(results))
		fmt.Fprintln(out, "Legend: [OK] available, [NO] missing, [SKIP] skipped, [TO] timed out, [ERR] check failed")
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVar(&flagAll, "all", false, "Check every language, not only the scaffoldable ones")
	Cmd.Flags().IntVar(&flagWorkers, "workers", 4, "Number of parallel tool checks")
	Cmd.Flags().IntVar(&flagTimeout, "timeout-ms", 10000, "Per-check timeout in milliseconds")
}
