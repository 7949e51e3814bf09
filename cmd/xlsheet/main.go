// Package main provides the CLI entry point for xlsheet-go.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsheet",
		Short: "Inspect and edit the structure of Excel sheets",
		Long: `xlsheet-go loads xlsx workbooks into an in-memory sheet model
(rows, merged regions, outline levels, header/footer sections), applies
structural edits and saves the result.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInspectCmd(),
		newShiftCmd(),
		newGroupCmd(true),
		newGroupCmd(false),
		newMergeCmd(),
		newUnmergeCmd(),
		newHeaderCmd(),
		newMarginCmd(),
	)
	return rootCmd
}

func setupLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
