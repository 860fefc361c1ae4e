package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSeqToken(t *testing.T) {
	for _, seq := range []int64{0, 1, 42, 9_007_199_254_740_993} {
		token := EncodeSeqToken(seq)
		assert.NotEmpty(t, token, "Token should not be empty")

		decoded, err := DecodeSeqToken(token)
		require.NoError(t, err)
		assert.Equal(t, seq, decoded)
	}
}

func TestDecodeSeqToken_Empty(t *testing.T) {
	seq, err := DecodeSeqToken("")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), seq)
}

func TestDecodeSeqTokenError(t *testing.T) {
	_, err := DecodeSeqToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeSeqToken(EncodeMultiFieldToken("page", "3"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeSeqToken(EncodeMultiFieldToken("seq", "abc"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "seq parse")

	_, err = DecodeSeqToken(EncodeMultiFieldToken("seq", "-5"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "negative seq")
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	parts, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}
