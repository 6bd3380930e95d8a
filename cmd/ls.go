package cmd

import (
	"github.com/spf13/cobra"
	"rsearch.dev/pkg/rsearch/internal/domain"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

// lsCmd represents the ls command.
var lsCmd = newLsCmd()

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [DIR]",
		Short: "List a directory",
		Long: `List the entries of one directory (default: current directory) with
their type, permissions, size, modification time and link target.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := m.Path(".")
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.List(cmd.Context(), domain.ListArgs{Path: path})
		},
	}
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
