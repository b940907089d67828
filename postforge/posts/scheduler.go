package posts

import (
	"context"
	"time"

	"github.com/postforge/server/internal/logger"
)

// how many due posts one scheduler tick will pick up
const schedulerBatchSize = 50

// called to publish one due post; implementations mark the post
// published or failed themselves
type PublishFunc func(ctx context.Context, post *Post)

// moves scheduled posts out the door once their publish time arrives
type Scheduler struct {
	repo          *Repository
	checkInterval time.Duration
	publish       PublishFunc
}

// creates a new post scheduler
func NewScheduler(repo *Repository, checkInterval time.Duration, publish PublishFunc) *Scheduler {
	return &Scheduler{
		repo:          repo,
		checkInterval: checkInterval,
		publish:       publish,
	}
}

// begins the scheduler background loop
func (s *Scheduler) Start(ctx context.Context) {
	logger.Info("starting post scheduler", "check_interval", s.checkInterval)

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("post scheduler stopped")
			return
		case <-ticker.C:
			s.publishDuePosts(ctx)
		}
	}
}

// finds and publishes posts whose scheduled time has passed
func (s *Scheduler) publishDuePosts(ctx context.Context) {
	due, err := s.repo.ListDue(ctx, time.Now(), schedulerBatchSize)
	if err != nil {
		logger.ErrorErr(err, "failed to list due posts")
		return
	}

	if len(due) == 0 {
		return
	}

	logger.Info("found due posts to publish", "count", len(due))

	for i := range due {
		post := &due[i]

		logger.Info("publishing scheduled post",
			"post_id", post.ID,
			"scheduled_for", post.ScheduledFor,
		)

		s.publish(ctx, post)
	}
}
