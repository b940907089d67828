package posts

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// post lifecycle states
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

// handles post database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a social media post. Only derived metadata about the text is
// stored: its character count and a truncated content hash. The raw
// content lives client-side and on the destination platforms, never here.
type Post struct {
	ID              string            `json:"id"`
	UserID          string            `json:"-"`
	ContentLength   int               `json:"content_length"`
	ContentHash     string            `json:"content_hash"`
	Status          string            `json:"status"`
	ContentMode     string            `json:"content_mode"`
	AIGenerated     bool              `json:"ai_generated"`
	Platforms       []string          `json:"platforms"`
	PlatformPostIDs map[string]string `json:"platform_post_ids,omitempty"`
	ScheduledFor    *time.Time        `json:"scheduled_for,omitempty"`
	PublishedAt     *time.Time        `json:"published_at,omitempty"`
	ErrorMessage    string            `json:"error_message,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// contains data for recording a new post. Content is consumed to derive
// metadata and is not persisted.
type CreatePostRequest struct {
	Content      string     `json:"content" binding:"required"`
	Platforms    []string   `json:"platforms" binding:"required"`
	ContentMode  string     `json:"content_mode"`
	AIGenerated  bool       `json:"ai_generated"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}
