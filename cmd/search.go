package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"rsearch.dev/pkg/rsearch/internal/argv"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

const colorLongFlag = "color"

var colorOption = argv.LongFlag{
	Name:        colorLongFlag,
	Description: "Colorize output: auto, always or never.",
	ValueName:   "WHEN",
}

// configBuilder turns parsed arguments into a search configuration.
type configBuilder func(parsed argv.Parsed) (m.SearchConfig, error)

// searchRunner executes a validated configuration.
type searchRunner func(cmd *cobra.Command, cfg m.SearchConfig) error

// newSearchCmd builds a command whose arguments follow the argv grammar
// instead of cobra's flag parsing.
func newSearchCmd(program *argv.Program, short string, build configBuilder, run searchRunner) *cobra.Command {
	return &cobra.Command{
		Use:                program.Name + " [VALUES] [OPTIONS] [ARGS]",
		Short:              short,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseSearchArgs(program, args, build)
			if errors.Is(err, argv.ErrHelp) {
				program.Usage(cmd.OutOrStdout())
				return nil
			}

			if err != nil {
				var usageErr *argv.UsageError
				if errors.As(err, &usageErr) {
					cmd.PrintErrln(usageErr.Error())
					program.Usage(cmd.ErrOrStderr())

					return err
				}

				cmd.PrintErrln(fmt.Sprintf("%s: %v", program.Name, err))

				return err
			}

			if err := run(cmd, cfg); err != nil {
				cmd.PrintErrln(fmt.Sprintf("%s: %v", program.Name, err))
				return err
			}

			return nil
		},
	}
}

// parseSearchArgs parses args, applies --color and builds a validated
// configuration. Configuration problems come back as *argv.UsageError.
func parseSearchArgs(program *argv.Program, args []string, build configBuilder) (m.SearchConfig, error) {
	parsed, err := program.Parse(args)
	if errors.Is(err, argv.ErrHelp) {
		return m.SearchConfig{}, err
	}

	if err != nil {
		return m.SearchConfig{}, &argv.UsageError{Program: program, Err: err}
	}

	if value, ok := parsed.Long(colorLongFlag); ok {
		if err := applyColorMode(value); err != nil {
			return m.SearchConfig{}, &argv.UsageError{Program: program, Err: err}
		}
	}

	cfg, err := build(parsed)
	if err != nil {
		return m.SearchConfig{}, &argv.UsageError{Program: program, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return m.SearchConfig{}, &argv.UsageError{Program: program, Err: err}
	}

	return cfg, nil
}

// treeOptions fills the traversal settings shared by grep and find.
func treeOptions(cfg *m.SearchConfig, parsed argv.Parsed) {
	cfg.Recursive = parsed.Has('r')
	cfg.FollowSymlinks = parsed.Has('s') || viper.GetBool(searchFollowSymlinksKey)

	cfg.Exclude = append(cfg.Exclude, parsed.Values('e')...)
	cfg.Exclude = append(cfg.Exclude, viper.GetStringSlice(searchExcludeKey)...)

	if parsed.Has('R') {
		cfg.UseRegex = true
		cfg.RegexPatterns = parsed.Values('R')
	}
}

func rootsOrCurrent(values []string) []m.Path {
	if len(values) == 0 {
		return []m.Path{"."}
	}

	return parsePaths(values)
}
