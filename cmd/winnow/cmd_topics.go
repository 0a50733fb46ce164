package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/larovann/winnow/topics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	topicsInput      string
	topicsMinK       int
	topicsMaxK       int
	topicsIterations int
	topicsWorkers    int
	topicsTopWords   int
)

// topicsCmd sweeps candidate topic counts over a line-per-document corpus
// and reports the most divergent one.
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Pick an LDA topic count by divergence",
	RunE:  runTopics,
}

func init() {
	topicsCmd.Flags().StringVarP(&topicsInput, "input", "i", "", "text file, one document per line (required)")
	topicsCmd.Flags().IntVar(&topicsMinK, "min-k", 2, "smallest candidate topic count")
	topicsCmd.Flags().IntVar(&topicsMaxK, "max-k", 12, "largest candidate topic count")
	topicsCmd.Flags().IntVar(&topicsIterations, "iterations", topics.DefaultIterations, "LDA iterations per fit")
	topicsCmd.Flags().IntVar(&topicsWorkers, "workers", 0, "parallel fits (0 = all cores)")
	topicsCmd.Flags().IntVar(&topicsTopWords, "top-words", topics.DefaultTopWords, "words to report per topic")
	_ = topicsCmd.MarkFlagRequired("input")
}

// loadDocuments reads one trimmed non-empty document per line.
func loadDocuments(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var docs []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			docs = append(docs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return docs, nil
}

func runTopics(cmd *cobra.Command, args []string) error {
	if topicsMinK < 2 || topicsMaxK < topicsMinK {
		return fmt.Errorf("bad K range [%d, %d]", topicsMinK, topicsMaxK)
	}

	docs, err := loadDocuments(topicsInput)
	if err != nil {
		return err
	}
	logger.Debug("loaded corpus", zap.Int("documents", len(docs)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	candidates := make([]int, 0, topicsMaxK-topicsMinK+1)
	for k := topicsMinK; k <= topicsMaxK; k++ {
		candidates = append(candidates, k)
	}

	opts := []topics.Option{
		topics.WithIterations(topicsIterations),
		topics.WithTopWords(topicsTopWords),
	}
	if topicsWorkers > 0 {
		opts = append(opts, topics.WithWorkers(topicsWorkers))
	}

	sel, err := topics.SelectK(ctx, docs, candidates, opts...)
	if err != nil {
		return fmt.Errorf("topic selection: %w", err)
	}

	for _, ks := range sel.Scores {
		marker := " "
		if ks.K == sel.BestK {
			marker = "*"
		}
		fmt.Printf("%s k=%-3d divergence=%.4f\n", marker, ks.K, ks.Score)
	}
	fmt.Printf("\nbest k: %d (divergence %.4f)\n", sel.BestK, sel.BestScore)
	for t, words := range sel.TopWords {
		fmt.Printf("topic %d: %s\n", t, strings.Join(words, ", "))
	}

	logger.Info("topic sweep done",
		zap.Int("candidates", len(candidates)),
		zap.Int("best_k", sel.BestK))

	return nil
}
