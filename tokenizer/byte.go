package tokenizer

// ByteTokenizer is the simplest possible tokenizer: each byte is a token.
// Vocab size = 256, no subword merging. It is the degenerate case every BPE
// sequence starts from, and a handy compression baseline.
type ByteTokenizer struct{}

func NewByteTokenizer() *ByteTokenizer {
	return &ByteTokenizer{}
}

// Encode converts a string to token IDs, one per byte.
func (t *ByteTokenizer) Encode(text string) []int64 {
	return byteTokens([]byte(text))
}

// Decode converts token IDs back to a string.
func (t *ByteTokenizer) Decode(tokens []int64) string {
	b := make([]byte, len(tokens))
	for i, tok := range tokens {
		b[i] = byte(tok)
	}
	return string(b)
}

// DecodeToken converts a single token ID to its string representation.
func (t *ByteTokenizer) DecodeToken(id int64) string {
	if b, ok := t.TokenBytes(id); ok {
		return string(b)
	}
	return "<unk>"
}

// TokenBytes returns the single byte behind a token ID.
func (t *ByteTokenizer) TokenBytes(id int64) ([]byte, bool) {
	if id < 0 || id >= int64(NumBytes) {
		return nil, false
	}
	return []byte{byte(id)}, true
}

// VocabSize returns the number of byte tokens.
func (t *ByteTokenizer) VocabSize() int {
	return NumBytes
}

// byteTokens seeds a token sequence from raw bytes, one token per byte. Both
// BPE training and encoding start from this sequence.
func byteTokens(data []byte) []int64 {
	if len(data) == 0 {
		return nil
	}
	ids := make([]int64, len(data))
	for i, b := range data {
		ids[i] = int64(b)
	}
	return ids
}
