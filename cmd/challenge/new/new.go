package new

import (
	"fmt"

	"github.com/abbasmoosajee07/challenge-utils/internal/config"
	"github.com/abbasmoosajee07/challenge-utils/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	flagProblem int
	flagLang    string
	flagAuthor  string
	flagInputs  int
	flagConfig  string
	flagDir     string
)

// Cmd implements `challenge new`: scaffold the problem folder, input files
// and a solution stub for one language.
var Cmd = &cobra.Command{
	Use:           "new",
	Short:         "Scaffold a problem folder, input files and a solution stub",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagProblem < 1 {
			return fmt.Errorf("missing required flag: --problem")
		}
		if flagLang == "" {
			return fmt.Errorf("missing required flag: --lang")
		}

		cfgPath := flagConfig
		if cfgPath == "" {
			cfgPath = flagDir
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		b := &scaffold.Builder{
			Author: flagAuthor,
			Dir:    flagDir,
			Config: cfg,
			Log:    out,
		}
		if _, err := b.CreateFiles(flagProblem, flagLang, flagInputs); err != nil {
			return err
		}
		fmt.Fprintln(out, "Created all necessary files")
		return nil
	},
}

func init() {
	Cmd.Flags().IntVarP(&flagProblem, "problem", "p", 0, "Problem number (required)")
	Cmd.Flags().StringVarP(&flagLang, "lang", "l", "", "Language to scaffold (required)")
	Cmd.Flags().StringVarP(&flagAuthor, "author", "a", "your_name", "Author name for the script header")
	Cmd.Flags().IntVar(&flagInputs, "inputs", 1, "Number of input text files")
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (.cue)")
	Cmd.Flags().StringVar(&flagDir, "dir", ".", "Challenge directory")
}
