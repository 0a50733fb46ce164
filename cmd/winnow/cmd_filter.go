package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/larovann/winnow/variance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	filterInput     string
	filterThreshold float64
	filterSample    bool
)

// filterCmd loads a CSV, fits the variance selector on its numeric columns,
// and prints the per-column verdicts.
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter low-variance columns from a CSV file",
	RunE:  runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterInput, "input", "i", "", "CSV file to load (required)")
	filterCmd.Flags().Float64VarP(&filterThreshold, "threshold", "t", variance.DefaultThreshold, "variance cutoff; columns must strictly exceed it")
	filterCmd.Flags().BoolVar(&filterSample, "sample", false, "use the unbiased ddof=1 estimator")
	_ = filterCmd.MarkFlagRequired("input")
}

func runFilter(cmd *cobra.Command, args []string) error {
	frame, err := loadFrame(filterInput)
	if err != nil {
		return err
	}

	names := numericColumns(frame)
	if len(names) == 0 {
		return fmt.Errorf("%s has no numeric columns", filterInput)
	}
	logger.Debug("loaded frame",
		zap.Int("rows", frame.NumRows()),
		zap.Int("numeric_columns", len(names)))

	X, err := frame.Matrix(names...)
	if err != nil {
		return fmt.Errorf("build matrix: %w", err)
	}

	opts := []variance.Option{variance.WithThreshold(filterThreshold)}
	if filterSample {
		opts = append(opts, variance.WithSampleVariance())
	}
	sel := variance.NewSelector(opts...)
	if err := sel.Fit(X); err != nil {
		return fmt.Errorf("fit selector: %w", err)
	}

	variances, err := sel.Variances()
	if err != nil {
		return err
	}
	mask, err := sel.SupportMask()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tvariance\tkept")
	kept := 0
	for j, name := range names {
		verdict := "drop"
		if mask[j] {
			verdict = "keep"
			kept++
		}
		fmt.Fprintf(tw, "%s\t%g\t%s\n", name, variances[j], verdict)
	}
	_ = tw.Flush()

	logger.Info("variance filter done",
		zap.Float64("threshold", filterThreshold),
		zap.Int("kept", kept),
		zap.Int("dropped", len(names)-kept))

	return nil
}
