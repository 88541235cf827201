package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteTokenizerRoundTrip(t *testing.T) {
	tok := NewByteTokenizer()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "hello, world"},
		{"unicode", "héllo wörld — привет"},
		{"raw bytes", "\x00\x01\xfe\xff"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ids := tok.Encode(tc.text)
			assert.Len(t, ids, len(tc.text), "one token per byte")
			assert.Equal(t, tc.text, tok.Decode(ids))
		})
	}
}

func TestByteTokenizerVocab(t *testing.T) {
	tok := NewByteTokenizer()

	assert.Equal(t, NumBytes, tok.VocabSize())

	b, ok := tok.TokenBytes(65)
	require.True(t, ok)
	assert.Equal(t, []byte("A"), b)

	_, ok = tok.TokenBytes(256)
	assert.False(t, ok)
	_, ok = tok.TokenBytes(-1)
	assert.False(t, ok)

	assert.Equal(t, "A", tok.DecodeToken(65))
	assert.Equal(t, "<unk>", tok.DecodeToken(300))
}

func TestByteTokens(t *testing.T) {
	assert.Nil(t, byteTokens(nil))
	assert.Nil(t, byteTokens([]byte{}))
	assert.Equal(t, []int64{104, 105}, byteTokens([]byte("hi")))
}
