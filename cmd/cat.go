package cmd

import (
	"github.com/spf13/cobra"
	"rsearch.dev/pkg/rsearch/internal/domain"
)

// catCmd represents the cat command.
var catCmd = newCatCmd()

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat FILE...",
		Short: "Concatenate files to standard output",
		Long: `Print each file followed by a newline. Files that cannot be read are
reported on stderr and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Cat(cmd.Context(), domain.CatArgs{Paths: parsePaths(args)})
		},
	}
}

func init() {
	rootCmd.AddCommand(catCmd)
}
