package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/larovann/winnow/dataset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	aggInput string
	aggBy    string
	aggSpecs string
)

// aggCmd runs a group-by aggregation and prints the resulting table.
var aggCmd = &cobra.Command{
	Use:   "agg",
	Short: "Group a CSV by one column and reduce others",
	Long: `Group a CSV by one column and reduce others.

The --agg flag takes comma-separated reducer:column pairs, e.g.
--agg sum:units,mean:price,count:units. Reducers: sum, mean, min, max,
count, median.`,
	RunE: runAgg,
}

func init() {
	aggCmd.Flags().StringVarP(&aggInput, "input", "i", "", "CSV file to load (required)")
	aggCmd.Flags().StringVarP(&aggBy, "by", "b", "", "column to group by (required)")
	aggCmd.Flags().StringVarP(&aggSpecs, "agg", "a", "", "reducer:column pairs (required)")
	_ = aggCmd.MarkFlagRequired("input")
	_ = aggCmd.MarkFlagRequired("by")
	_ = aggCmd.MarkFlagRequired("agg")
}

func parseAggSpecs(raw string) ([]dataset.AggSpec, error) {
	var specs []dataset.AggSpec
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("malformed agg spec %q, want reducer:column", pair)
		}
		reducer, err := dataset.ParseReducer(parts[0])
		if err != nil {
			return nil, err
		}
		specs = append(specs, dataset.AggSpec{Column: parts[1], Reduce: reducer})
	}

	return specs, nil
}

func runAgg(cmd *cobra.Command, args []string) error {
	specs, err := parseAggSpecs(aggSpecs)
	if err != nil {
		return err
	}

	frame, err := loadFrame(aggInput)
	if err != nil {
		return err
	}
	logger.Debug("loaded frame",
		zap.Int("rows", frame.NumRows()),
		zap.String("group_by", aggBy))

	result, err := frame.GroupBy(aggBy).Agg(specs...)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	printFrame(os.Stdout, result)
	logger.Info("aggregation done",
		zap.Int("groups", result.NumRows()),
		zap.Int("columns", result.NumCols()))

	return nil
}
