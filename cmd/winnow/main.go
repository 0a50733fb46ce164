// Command winnow runs the analysis toolkit from the shell: CSV filtering,
// group-by aggregation, topic-count selection, and classifier training.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger, built in PersistentPreRunE
	logger *zap.Logger
)

// rootCmd is the base command; every tutorial step hangs off it.
var rootCmd = &cobra.Command{
	Use:   "winnow",
	Short: "winnow - tabular filtering, aggregation, and model selection",
	Long: `winnow is a small analysis toolkit.

It loads CSV data into typed columns, filters features by variance,
aggregates with group-by reducers, picks an LDA topic count by divergence,
and trains a gradient-boosted classifier through a preprocessing pipeline.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(aggCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(trainCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
