package root

import (
	"github.com/abbasmoosajee07/challenge-utils/cmd/challenge/bench"
	"github.com/abbasmoosajee07/challenge-utils/cmd/challenge/new"
	"github.com/abbasmoosajee07/challenge-utils/cmd/challenge/show"
	"github.com/abbasmoosajee07/challenge-utils/cmd/challenge/tools"
	"github.com/abbasmoosajee07/challenge-utils/cmd/challenge/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for challenge-utils.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "CLI: scaffold, read and benchmark polyglot coding-challenge solutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(show.Cmd)
	cmd.AddCommand(new.Cmd)
	cmd.AddCommand(bench.Cmd)
	cmd.AddCommand(tools.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
