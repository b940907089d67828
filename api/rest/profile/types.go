package profile

import (
	"github.com/postforge/server/internal/platforms"
	"github.com/postforge/server/postforge/users"
)

// Response bundles the user's profile with everything the client needs
// to render tier-gated UI
type Response struct {
	User         *users.User            `json:"user"`
	Tier         TierInfo               `json:"tier"`
	ContentModes []string                `json:"content_modes"`
	Platforms    []*platforms.Definition `json:"platforms"`
}

// TierInfo summarizes the user's subscription tier
type TierInfo struct {
	Key                  string         `json:"key"`
	Name                 string         `json:"name"`
	Features             map[string]any `json:"features"`
	PostsPerHour         int            `json:"posts_per_hour"`
	ScheduledPostsPerDay int            `json:"scheduled_posts_per_day"`
	GenerationsPerMonth  int            `json:"generations_per_month"`
	UnlimitedGenerations bool           `json:"unlimited_generations"`
}

// UpdateRequest carries the editable profile fields
type UpdateRequest struct {
	Name        string   `json:"name" binding:"max=100"`
	Bio         string   `json:"bio" binding:"max=2000"`
	Mission     string   `json:"mission_statement" binding:"max=2000"`
	Skills      []string `json:"skills"`
	ContentMode string   `json:"content_mode"`
}
