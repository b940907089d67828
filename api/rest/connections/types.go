package connections

import (
	"github.com/postforge/server/internal/platforms"
	"github.com/postforge/server/postforge/connections"
)

// ListResponse wraps the user's platform connections
type ListResponse struct {
	Connections []ConnectionView `json:"connections"`
}

// ConnectionView is a connection plus its derived usability state
type ConnectionView struct {
	connections.Connection
	Valid bool `json:"valid"`
}

// PlatformsResponse lists every registered platform with the subset the
// user's tier may post to
type PlatformsResponse struct {
	Platforms []*platforms.Definition `json:"platforms"`
	Available []string                `json:"available"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
