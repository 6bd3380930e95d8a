// Package cmd provides the root command and CLI setup for rsearch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"rsearch.dev/pkg/rsearch/internal/adapter"
	"rsearch.dev/pkg/rsearch/internal/controller"
	"rsearch.dev/pkg/rsearch/internal/domain"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var simpleUI *controller.SimpleUI
var ui controller.UI

var colorFlag string
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	simpleUI = controller.NewSimpleUI(rootCmd, controller.ColorAuto)
	ui = simpleUI
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	orchestrator = domain.NewOrchestrator(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, ui, orchestrator)
}

const rootLongDescription = `rsearch bundles small Unix-style file tools around one search engine.

grep searches file contents and find searches paths. Both walk the given
roots in a stable order, optionally recursing, following symlinks and
excluding paths that contain any of the given substrings.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rsearch",
		Short: "Recursive grep, find and friends",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return applyColorMode(viper.GetString(colorKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&colorFlag, colorKey, viper.GetString(colorKey), "colorize output: auto, always or never")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(colorKey), colorKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// applyColorMode parses value and applies it to the shared UI.
func applyColorMode(value string) error {
	mode, err := controller.ParseColorMode(value)
	if err != nil {
		return err
	}

	if simpleUI != nil {
		simpleUI.SetColorMode(mode)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
