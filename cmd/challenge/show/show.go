package show

import (
	"github.com/abbasmoosajee07/challenge-utils/internal/input"
	"github.com/spf13/cobra"
)

var (
	flagDir   string
	flagInput string
	flagLang  string
)

// Cmd implements `challenge show`: read an input file and print its lines
// followed by the language banner. An optional positional argument overrides
// the default input path.
var Cmd = &cobra.Command{
	Use:           "show [input-file]",
	Short:         "Print an input file followed by the language banner",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		override := ""
		if len(args) == 1 {
			override = args[0]
		}
		path := input.Locate(flagDir, flagInput, override)
		lines, err := input.ReadLines(path)
		if err != nil {
			return err
		}
		input.Fprint(cmd.OutOrStdout(), lines, flagLang)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVar(&flagDir, "dir", ".", "Directory holding the default input file")
	Cmd.Flags().StringVar(&flagInput, "input", "input.txt", "Default input filename")
	Cmd.Flags().StringVar(&flagLang, "lang", "Go", "Language name printed in the banner")
}
