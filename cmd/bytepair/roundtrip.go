package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type rtCase struct {
	label string
	text  string
}

func trunc(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

func NewRoundtripCmd() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:               "roundtrip [text]...",
		Short:             "Verify that encode followed by decode reproduces the input",
		Example:           `bytepair roundtrip --corpus data/corpus.txt "unseen input" "ещё один"`,
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

			cases := []rtCase{{label: "corpus", text: string(corpus)}}
			for i, arg := range args {
				cases = append(cases, rtCase{label: fmt.Sprintf("arg %d", i+1), text: arg})
			}

			green := color.New(color.FgGreen).SprintFunc()
			red := color.New(color.FgRed).SprintFunc()

			failures := 0
			for _, c := range cases {
				ids := tok.Encode(c.text)
				ok := tok.Decode(ids) == c.text

				mark := green("✓")
				if !ok {
					mark = red("✗")
					failures++
				}

				ratio := 0.0
				if len(ids) > 0 {
					ratio = float64(len(c.text)) / float64(len(ids))
				}
				fmt.Fprintf(color.Output, "  %s [%s] %-45s → %4d tokens (%.2fx)\n",
					mark, c.label, trunc(c.text, 42), len(ids), ratio)
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d inputs failed to round-trip", failures, len(cases))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus file to train on")

	return cmd
}
