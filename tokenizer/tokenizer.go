// Package tokenizer implements a byte-level byte-pair-encoding (BPE)
// tokenizer that learns its merge rules directly from a training corpus.
package tokenizer

// ============================================================================
// Token ID layout:
//
//   0-255:  raw bytes (UTF-8 byte values)
//   256+:   BPE merged tokens, assigned in the order merges are discovered
//
// There are no reserved ids beyond the raw bytes: the first learned merge
// becomes token 256, the next 257, and so on.
// ============================================================================

const (
	// NumBytes is the number of raw byte tokens.
	NumBytes = 256

	// FirstMergeID is the id assigned to the first learned merge rule.
	FirstMergeID = int64(NumBytes)
)

// Tokenizer is the common interface for all tokenizers in this module.
// Both ByteTokenizer and BPETokenizer implement it.
type Tokenizer interface {
	Encode(text string) []int64
	Decode(tokens []int64) string
	VocabSize() int
}
