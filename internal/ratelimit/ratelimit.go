package ratelimit

import (
	"context"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/postforge/server/internal/tiers"
)

// enforces per-tier posting rates. Counters live in process memory and
// reset on restart, which is acceptable for an hourly window.
type PostLimiter struct {
	limiters map[string]*limiter.Limiter
}

// builds one limiter per subscription tier from its posts-per-hour limit
func NewPostLimiter() *PostLimiter {
	store := memory.NewStore()
	limiters := make(map[string]*limiter.Limiter)

	for _, def := range tiers.All() {
		limiters[def.Key] = limiter.New(store, limiter.Rate{
			Period: time.Hour,
			Limit:  int64(def.PostsPerHour),
		})
	}

	return &PostLimiter{limiters: limiters}
}

// consumes one posting slot for the user; reports whether the tier's
// hourly limit has been reached. Unknown tiers get the free tier's rate.
func (l *PostLimiter) Allow(ctx context.Context, userID, tier string) (bool, limiter.Context, error) {
	lim, ok := l.limiters[tier]
	if !ok {
		lim = l.limiters[tiers.DefinitionFor(tier).Key]
	}

	lctx, err := lim.Get(ctx, "posts:"+userID)
	if err != nil {
		return false, lctx, err
	}

	return !lctx.Reached, lctx, nil
}
