// Package cmd provides the root command and CLI setup for twintrim.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aryanadla/twinTrim/internal/adapter"
	"github.com/aryanadla/twinTrim/internal/controller"
	"github.com/aryanadla/twinTrim/internal/domain"
)

var fsAdapter adapter.ScanFSAdapter
var engine domain.Engine

// newWorkflow builds the scan workflow around the UI chosen at run time.
// Swapped out in tests.
var newWorkflow = func(ui controller.UI) domain.Workflow {
	return domain.NewWorkflow(fsAdapter, engine, ui)
}

// logFileFlag overrides the log destination for one invocation.
var logFileFlag string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

// noColorFlag disables all output styling.
var noColorFlag bool

const rootLongDescription = `Twintrim finds files with identical content under a directory tree and
helps you reclaim storage by deleting the redundant copies.

Files are bucketed by size first, so only size-colliding files are read
and hashed; hashing runs on a bounded worker pool.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twintrim",
		Short: "Find and manage duplicate files",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalScanFSAdapter()
	engine = domain.NewEngine(fsAdapter)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName,
		viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v",
		viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().BoolVar(&noColorFlag, noColorFlagName,
		viper.GetBool(noColorConfigKey), "disable colored output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noColorFlagName), noColorConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
