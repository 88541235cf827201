package tokenizer

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// BPETokenizer implements byte-level BPE (Sennrich et al., 2016), trained
// directly on a corpus.
//
// Training:
//  1. Start with one token per corpus byte.
//  2. Count all adjacent token pairs.
//  3. Merge the most frequent pair into a new token (ids from 256 up).
//  4. Repeat until no pair occurs more than once.
//
// Encoding replays the same frequency-driven loop over new input, but applies
// a merge only when the selected pair is a trained rule: if the most frequent
// pair of the current sequence was never learned, encoding stops right there,
// even when rarer trained pairs remain. Training and encoding therefore make
// identical decisions on the training corpus itself, which is what the
// round-trip guarantee rests on.
//
// Decoding looks up the byte sequence behind each token ID and concatenates.
type BPETokenizer struct {
	merges   []Pair         // rules in creation order; merges[i] produced id FirstMergeID+i
	mergeIDs map[Pair]int64 // rule lookup: pair → merged token id
	vocab    [][]byte       // id → byte sequence; dense, built in creation order
	closed   bool
}

// TrainConfig controls progress reporting during training. The zero value is
// usable: a nil Logger falls back to the logrus standard logger.
type TrainConfig struct {
	Logger   log.FieldLogger
	LogEvery int // merges between progress lines (0 = 500)
}

// DefaultTrainConfig returns the configuration Train uses.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{LogEvery: 500}
}

// Train learns merge rules from corpus until no adjacent pair repeats, then
// returns the trained tokenizer. Training cannot fail: a corpus with no
// recurring pair (including empty and single-byte corpora) simply yields zero
// rules and the 256-entry byte table.
func Train(corpus []byte) *BPETokenizer {
	return TrainWithConfig(corpus, DefaultTrainConfig())
}

// TrainWithConfig is Train with explicit progress-reporting settings.
func TrainWithConfig(corpus []byte, cfg TrainConfig) *BPETokenizer {
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	logEvery := cfg.LogEvery
	if logEvery <= 0 {
		logEvery = 500
	}

	t := &BPETokenizer{mergeIDs: make(map[Pair]int64)}
	ids := byteTokens(corpus)

	logger.WithField("bytes", len(corpus)).Info("BPE training started")

	nextID := FirstMergeID
	for {
		best, count := maxPair(countPairs(ids))
		if count <= 1 {
			// No pair recurs; further merging gains nothing.
			break
		}

		ids = replacePairInPlace(ids, best, nextID)
		t.merges = append(t.merges, best)
		t.mergeIDs[best] = nextID

		if m := len(t.merges); m <= 5 || m%logEvery == 0 {
			logger.WithFields(log.Fields{
				"merge":   m,
				"pair":    fmt.Sprintf("(%d,%d)", best.A, best.B),
				"token":   nextID,
				"freq":    count,
				"seq_len": len(ids),
			}).Debug("pair merged")
		}
		nextID++
	}

	// Build the reconstruction table. Rules are walked in creation order so
	// both operands are already present when their concatenation is added.
	t.vocab = buildVocab(t.merges)

	ratio := 1.0
	if len(ids) > 0 {
		ratio = float64(len(corpus)) / float64(len(ids))
	}
	logger.WithFields(log.Fields{
		"merges":      len(t.merges),
		"vocab":       len(t.vocab),
		"tokens":      len(ids),
		"compression": fmt.Sprintf("%.2fx", ratio),
	}).Info("BPE training complete")

	return t
}

// buildVocab maps every token id to the byte sequence it expands to: ids
// 0-255 are their single byte, then one entry per merge rule in creation
// order.
func buildVocab(merges []Pair) [][]byte {
	vocab := make([][]byte, NumBytes, NumBytes+len(merges))
	for i := range vocab {
		vocab[i] = []byte{byte(i)}
	}
	for _, p := range merges {
		vocab = append(vocab, concatBytes(vocab[p.A], vocab[p.B]))
	}
	return vocab
}

// ============================================================================
// Encode / Decode
// ============================================================================

// Encode converts text to a sequence of token IDs owned by the caller.
//
// The loop mirrors training: count pairs, select the most frequent, merge. It
// stops when no pair repeats, or when the selected pair has no trained rule;
// it deliberately does not fall back to a less frequent pair that does have
// one. See the type doc.
func (t *BPETokenizer) Encode(text string) []int64 {
	t.mustBeOpen()

	ids := byteTokens([]byte(text))
	for len(ids) >= 2 {
		best, count := maxPair(countPairs(ids))
		if count <= 1 {
			break
		}
		newID, ok := t.mergeIDs[best]
		if !ok {
			// The dominant pair was never learned; stop here.
			break
		}
		ids = replacePairInPlace(ids, best, newID)
	}
	return ids
}

// Decode converts token IDs back to text, concatenating each token's byte
// sequence in input order. The returned string is the caller's.
//
// A token without a vocabulary entry means the sequence did not come from
// this tokenizer; that is a programming error, not bad input, and Decode
// panics on it.
func (t *BPETokenizer) Decode(tokens []int64) string {
	t.mustBeOpen()

	var sb strings.Builder
	for _, id := range tokens {
		if id < 0 || id >= int64(len(t.vocab)) {
			panic(fmt.Sprintf("tokenizer: token %d has no vocabulary entry (vocab size %d)", id, len(t.vocab)))
		}
		sb.Write(t.vocab[id])
	}
	return sb.String()
}

// Close releases the merge rules and the reconstruction table. The tokenizer
// must not be used afterwards; Encode and Decode panic once it is closed.
func (t *BPETokenizer) Close() {
	t.merges = nil
	t.mergeIDs = nil
	t.vocab = nil
	t.closed = true
}

func (t *BPETokenizer) mustBeOpen() {
	if t.closed {
		panic("tokenizer: use after Close")
	}
}

// VocabSize returns the total vocabulary size (bytes + merges).
func (t *BPETokenizer) VocabSize() int {
	return len(t.vocab)
}

// NumMerges returns the number of learned merge rules.
func (t *BPETokenizer) NumMerges() int {
	return len(t.merges)
}

// TokenBytes returns the raw byte sequence for a token ID.
func (t *BPETokenizer) TokenBytes(id int64) ([]byte, bool) {
	if id < 0 || id >= int64(len(t.vocab)) {
		return nil, false
	}
	return t.vocab[id], true
}

// DecodeToken converts a single token ID to its string representation.
func (t *BPETokenizer) DecodeToken(id int64) string {
	if b, ok := t.TokenBytes(id); ok {
		return string(b)
	}
	return "<unk>"
}

// ============================================================================
// Internal helpers
// ============================================================================

// concatBytes concatenates two byte slices into a new slice.
func concatBytes(a, b []byte) []byte {
	c := make([]byte, len(a)+len(b))
	copy(c, a)
	copy(c[len(a):], b)
	return c
}

// SafeString returns a printable representation of token bytes, escaping
// control and non-ASCII bytes. Meant for logs and table output.
func SafeString(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, c := range b {
		switch {
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c >= 32 && c < 127:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
	}
	return sb.String()
}
