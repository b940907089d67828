package main

import (
	"context"

	"github.com/postforge/server/internal/content"
	"github.com/postforge/server/internal/llm"
	"github.com/postforge/server/internal/logger"
	"github.com/postforge/server/internal/publisher"
	"github.com/postforge/server/internal/ratelimit"
	"github.com/postforge/server/postforge/connections"
	"github.com/postforge/server/postforge/posts"
)

// creates and configures all service clients
func InitializeServices() *Services {
	generator := llm.NewAnthropicClient(llm.LoadConfig())

	return &Services{
		Content:   content.New(generator),
		Publisher: publisher.NewService(),
		Limiter:   ratelimit.NewPostLimiter(),
	}
}

// builds the callback the scheduler invokes for each due post. Content is
// taken from the vault; when it is gone (restart, expiry) the post is
// marked failed because the text cannot be reconstructed from metadata.
func ScheduledPublisher(
	vault *posts.ContentVault,
	connRepo *connections.Repository,
	postRepo *posts.Repository,
	pub *publisher.Service,
) posts.PublishFunc {
	return func(ctx context.Context, post *posts.Post) {
		body, err := vault.Take(post.ID)
		if err != nil {
			if _, markErr := postRepo.MarkFailed(ctx, post.ID, "scheduled content no longer available, please recreate the post"); markErr != nil {
				logger.ErrorErr(markErr, "failed to mark scheduled post as failed", "post_id", post.ID)
			}

			logger.Warn("scheduled post content unavailable", "post_id", post.ID, "error", err)

			return
		}

		postIDs, failures := pub.PublishAll(ctx, connRepo, post.UserID, post.Platforms, body)

		if len(postIDs) > 0 {
			if _, err := postRepo.MarkPublished(ctx, post.ID, postIDs); err != nil {
				logger.ErrorErr(err, "failed to record scheduled publication", "post_id", post.ID)
			}

			logger.Info("scheduled post published",
				"post_id", post.ID,
				"platforms", len(postIDs),
				"failures", len(failures),
			)

			return
		}

		message := "all platforms failed"

		for _, failure := range failures {
			message = failure
			break
		}

		if _, err := postRepo.MarkFailed(ctx, post.ID, message); err != nil {
			logger.ErrorErr(err, "failed to record scheduled failure", "post_id", post.ID)
		}
	}
}
