package cmd

import (
	"github.com/spf13/cobra"
	"rsearch.dev/pkg/rsearch/internal/argv"
	"rsearch.dev/pkg/rsearch/internal/domain"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

var findProgram = &argv.Program{
	Name: "find",
	Flags: []argv.Flag{
		{ID: 'R', Description: "Match paths with regular expressions instead of literal patterns.", ValueName: "REGEX"},
		{ID: 'd', Description: "Directories to search (default: current directory).", ValueName: "DIR"},
		{ID: 'r', Description: "Search directories recursively."},
		{ID: 'e', Description: "Exclude paths containing any of these substrings.", ValueName: "SUBSTR"},
		{ID: 's', Description: "Follow symbolic links to directories."},
	},
	Long: []argv.LongFlag{colorOption},
	Examples: []string{
		"rsearch find .go -r",
		"rsearch find -R '_test\\.go$' -r -d internal cmd",
		"rsearch find README -r -e node_modules",
	},
}

// findCmd represents the find command.
var findCmd = newFindCmd()

func newFindCmd() *cobra.Command {
	return newSearchCmd(findProgram, "Search file and directory paths for patterns", findConfig,
		func(cmd *cobra.Command, cfg m.SearchConfig) error {
			return workflow.Find(cmd.Context(), domain.FindArgs{Config: cfg})
		})
}

func findConfig(parsed argv.Parsed) (m.SearchConfig, error) {
	cfg := m.SearchConfig{
		Roots:    rootsOrCurrent(parsed.Values('d')),
		Patterns: parsed.Free,
	}
	treeOptions(&cfg, parsed)

	return cfg, nil
}

func init() {
	rootCmd.AddCommand(findCmd)
}
