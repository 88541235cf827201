package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/djeday123/bytepair/stats"
	"github.com/djeday123/bytepair/tokenizer"
)

// trainFromFile reads a corpus file and trains a tokenizer on it. Every
// subcommand starts here: trained state is not persisted, so each run trains
// from scratch.
func trainFromFile(path string) ([]byte, *tokenizer.BPETokenizer, error) {
	corpus, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("while reading corpus: %w", err)
	}

	tok := tokenizer.TrainWithConfig(corpus, tokenizer.TrainConfig{
		LogEvery: cfg.Train.LogEvery,
	})
	return corpus, tok, nil
}

func NewTrainCmd() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:               "train",
		Short:             "Train a tokenizer on a corpus file and report statistics",
		Example:           `bytepair train --corpus data/corpus.txt`,
		Args:              cobra.ExactArgs(0),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if corpusPath == "" {
				return errors.New("--corpus is required")
			}

			corpus, tok, err := trainFromFile(corpusPath)
			if err != nil {
				return err
			}
			defer tok.Close()

			report := stats.Analyze(tok, corpus, cfg.Report.TopTokens)

			out := color.Output
			fmt.Fprintf(out, "Vocabulary: %d tokens (%d merges)\n\n", tok.VocabSize(), tok.NumMerges())
			renderReportTable(out, report)
			if len(report.Top) > 0 {
				fmt.Fprintln(out)
				renderTopTokensTable(out, report)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus file to train on")

	return cmd
}
