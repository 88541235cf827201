// Package stats computes corpus-level statistics for a trained tokenizer:
// compression ratio, token distribution entropy, and the most frequent
// tokens. It is what the CLI report and training experiments are built on.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Tokenizer is the minimal surface Analyze needs.
type Tokenizer interface {
	Encode(text string) []int64
	TokenBytes(id int64) ([]byte, bool)
}

// TokenCount is one row of the frequency table.
type TokenCount struct {
	ID    int64
	Bytes []byte
	Count int
}

// Report summarizes how a tokenizer performs on one input.
type Report struct {
	InputBytes   int
	Tokens       int
	Distinct     int
	Ratio        float64 // input bytes per token
	EntropyBits  float64 // Shannon entropy of the token distribution
	MeanTokenLen float64 // mean byte length over distinct tokens
	Top          []TokenCount
}

// Analyze encodes input with tok and reports distribution statistics. Top
// holds at most topN entries, most frequent first, ties broken by token ID.
func Analyze(tok Tokenizer, input []byte, topN int) Report {
	ids := tok.Encode(string(input))

	r := Report{
		InputBytes: len(input),
		Tokens:     len(ids),
	}
	if len(ids) == 0 {
		return r
	}

	counts := make(map[int64]int)
	for _, id := range ids {
		counts[id]++
	}
	r.Distinct = len(counts)
	r.Ratio = float64(len(input)) / float64(len(ids))

	probs := make([]float64, 0, len(counts))
	lengths := make([]float64, 0, len(counts))
	top := make([]TokenCount, 0, len(counts))
	for id, c := range counts {
		probs = append(probs, float64(c)/float64(len(ids)))
		b, _ := tok.TokenBytes(id)
		lengths = append(lengths, float64(len(b)))
		top = append(top, TokenCount{ID: id, Bytes: b, Count: c})
	}

	// stat.Entropy returns nats; reports quote bits.
	r.EntropyBits = stat.Entropy(probs) / math.Ln2
	r.MeanTokenLen = stat.Mean(lengths, nil)

	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].ID < top[j].ID
	})
	if topN < 0 {
		topN = 0
	}
	if topN > len(top) {
		topN = len(top)
	}
	r.Top = top[:topN]

	return r
}
