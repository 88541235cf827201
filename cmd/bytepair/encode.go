package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func readInput(args []string, inputPath string) ([]byte, error) {
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, fmt.Errorf("while reading input: %w", err)
		}
		return data, nil
	}
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	return nil, errors.New("provide text as an argument or a file with --input")
}

func NewEncodeCmd() *cobra.Command {
	var (
		corpusPath string
		inputPath  string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text with a tokenizer trained on a corpus file",
		Example: `bytepair encode --corpus data/corpus.txt "the quick brown fox"
bytepair encode --corpus data/corpus.txt --input letter.txt --json`,
		Args:              cobra.MaximumNArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if corpusPath == "" {
				return errors.New("--corpus is required")
			}

			input, err := readInput(args, inputPath)
			if err != nil {
				return err
			}

			_, tok, err := trainFromFile(corpusPath)
			if err != nil {
				return err
			}
			defer tok.Close()

			ids := tok.Encode(string(input))
			log.WithFields(log.Fields{"bytes": len(input), "tokens": len(ids)}).Info("input encoded")

			if asJSON {
				data, err := json.Marshal(ids)
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = strconv.FormatInt(id, 10)
			}
			fmt.Println(strings.Join(parts, " "))

			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus file to train on")
	cmd.Flags().StringVar(&inputPath, "input", "", "encode the contents of this file instead of the argument")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print token IDs as a JSON array")

	return cmd
}
