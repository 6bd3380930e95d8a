package cmd

import (
	"github.com/spf13/cobra"
	"rsearch.dev/pkg/rsearch/internal/argv"
	"rsearch.dev/pkg/rsearch/internal/domain"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

var grepProgram = &argv.Program{
	Name: "grep",
	Flags: []argv.Flag{
		{ID: 'R', Description: "Search with regular expressions instead of literal patterns.", ValueName: "REGEX"},
		{ID: 'r', Description: "Search directories recursively."},
		{ID: 'n', Description: "Prefix each matching line with its line number."},
		{ID: 'l', Description: "Print only the paths of files with a match."},
		{ID: 'L', Description: "Print only the paths of files without a match."},
		{ID: 's', Description: "Follow symbolic links to directories."},
		{ID: 'e', Description: "Exclude paths containing any of these substrings.", ValueName: "SUBSTR"},
		{ID: 'p', Description: "Paths to search (default: current directory).", ValueName: "PATH"},
	},
	Long: []argv.LongFlag{colorOption},
	Examples: []string{
		"rsearch grep TODO -r -p src",
		"rsearch grep -R 'fn [a-z]+' -rn",
		"rsearch grep secret -rl -e .git vendor",
		"rsearch grep -- -r -p notes.txt",
	},
}

// grepCmd represents the grep command.
var grepCmd = newGrepCmd()

func newGrepCmd() *cobra.Command {
	return newSearchCmd(grepProgram, "Search file contents for patterns", grepConfig,
		func(cmd *cobra.Command, cfg m.SearchConfig) error {
			return workflow.Grep(cmd.Context(), domain.GrepArgs{Config: cfg})
		})
}

func grepConfig(parsed argv.Parsed) (m.SearchConfig, error) {
	mode, err := m.SelectOutputMode(parsed.Has('n'), parsed.Has('l'), parsed.Has('L'))
	if err != nil {
		return m.SearchConfig{}, err
	}

	cfg := m.SearchConfig{
		Roots:      rootsOrCurrent(parsed.Values('p')),
		Patterns:   parsed.Free,
		OutputMode: mode,
	}
	treeOptions(&cfg, parsed)

	return cfg, nil
}

func init() {
	rootCmd.AddCommand(grepCmd)
}
