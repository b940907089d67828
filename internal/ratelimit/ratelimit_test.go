package ratelimit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLimiter_FreeTierAllowsOnePostPerHour(t *testing.T) {
	l := NewPostLimiter()
	ctx := context.Background()

	allowed, lctx, err := l.Allow(ctx, "user-1", "free")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int64(1), lctx.Limit)

	allowed, _, err = l.Allow(ctx, "user-1", "free")
	require.NoError(t, err)
	assert.False(t, allowed, "second post within the hour should be rejected")
}

func TestPostLimiter_ProTierAllowsMore(t *testing.T) {
	l := NewPostLimiter()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, _, err := l.Allow(ctx, "user-2", "pro")
		require.NoError(t, err)
		assert.True(t, allowed, "post %d should be within the pro limit", i+1)
	}

	allowed, _, err := l.Allow(ctx, "user-2", "pro")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPostLimiter_UnknownTierFallsBackToFree(t *testing.T) {
	l := NewPostLimiter()
	ctx := context.Background()

	allowed, lctx, err := l.Allow(ctx, "user-3", "platinum")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int64(1), lctx.Limit)
}

func TestPostLimiter_UsersAreIndependent(t *testing.T) {
	l := NewPostLimiter()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		userID := fmt.Sprintf("user-%d", i)

		allowed, _, err := l.Allow(ctx, userID, "free")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
