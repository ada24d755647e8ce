package secrets

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		token, err := Generate()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		assert.Len(t, raw, tokenBytes)
		assert.False(t, seen[token], "duplicate token")
		seen[token] = true
	}
}

func TestDigest(t *testing.T) {
	a := Digest("token-a")
	assert.Len(t, a, 64)
	assert.Equal(t, a, Digest("token-a"))
	assert.NotEqual(t, a, Digest("token-b"))
	assert.NotContains(t, a, "token-a")
	// SHA3-256 of the empty string.
	assert.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", Digest(""))
}
