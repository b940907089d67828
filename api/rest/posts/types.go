package posts

import (
	"time"

	"github.com/postforge/server/api/rest/pagination"
	"github.com/postforge/server/postforge/posts"
)

// CreateRequest carries a new post. Content is consumed for publishing
// and metadata; it is never written to storage.
type CreateRequest struct {
	Content      string     `json:"content" binding:"required"`
	Platforms    []string   `json:"platforms" binding:"required,min=1"`
	ContentMode  string     `json:"content_mode"`
	AIGenerated  bool       `json:"ai_generated"`
	PublishNow   bool       `json:"publish_now"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

// PublishRequest resubmits the content for an existing post. The text
// must match the post's recorded hash.
type PublishRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostResponse is a post plus the outcome of any publish attempts made
// during the request
type PostResponse struct {
	Post     *posts.Post       `json:"post"`
	Failures map[string]string `json:"failures,omitempty"`
}

// ListResponse wraps posts with pagination metadata
type ListResponse struct {
	Posts      []posts.Post    `json:"posts"`
	Pagination pagination.Meta `json:"pagination"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
