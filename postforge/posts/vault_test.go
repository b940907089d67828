package posts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentVault_HoldAndTake(t *testing.T) {
	v := NewContentVault()

	v.Hold("post-1", "the actual words", time.Now().Add(time.Hour))
	assert.Equal(t, 1, v.Count())

	content, err := v.Take("post-1")
	require.NoError(t, err)
	assert.Equal(t, "the actual words", content)

	// taking removes the entry
	_, err = v.Take("post-1")
	assert.ErrorIs(t, err, ErrContentNotHeld)
}

func TestContentVault_MissingPost(t *testing.T) {
	v := NewContentVault()

	_, err := v.Take("never-held")
	assert.ErrorIs(t, err, ErrContentNotHeld)
}

func TestContentVault_ExpiredContent(t *testing.T) {
	v := NewContentVault()

	// scheduled far enough in the past that the grace period has lapsed
	v.Hold("post-2", "stale words", time.Now().Add(-2*vaultGracePeriod))

	_, err := v.Take("post-2")
	assert.ErrorIs(t, err, ErrContentExpired)
}

func TestContentVault_Discard(t *testing.T) {
	v := NewContentVault()

	v.Hold("post-3", "words", time.Now().Add(time.Hour))
	v.Discard("post-3")

	assert.Equal(t, 0, v.Count())
}
