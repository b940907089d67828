package posts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentMetadata(t *testing.T) {
	length, hash := ContentMetadata("Excited to announce our new product launch!")

	assert.Equal(t, 43, length)
	assert.Len(t, hash, 16)

	// sha256 of the same text, truncated
	assert.Equal(t, strings.ToLower(hash), hash)
}

func TestContentMetadata_DeterministicAndDistinct(t *testing.T) {
	_, hashA := ContentMetadata("same content")
	_, hashB := ContentMetadata("same content")
	_, hashC := ContentMetadata("different content")

	assert.Equal(t, hashA, hashB)
	assert.NotEqual(t, hashA, hashC)
}

func TestContentMetadata_CountsCharactersNotBytes(t *testing.T) {
	length, _ := ContentMetadata("héllo wörld")

	assert.Equal(t, 11, length)
}

func TestContentMetadata_NeverContainsContent(t *testing.T) {
	content := "secretword announcement"
	_, hash := ContentMetadata(content)

	assert.NotContains(t, hash, "secretword")
}

func TestContentMetadata_Empty(t *testing.T) {
	length, hash := ContentMetadata("")

	assert.Equal(t, 0, length)
	// sha256 of the empty string, first 16 hex chars
	assert.Equal(t, "e3b0c44298fc1c14", hash)
}
