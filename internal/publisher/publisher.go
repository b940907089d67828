package publisher

import (
	"context"

	"github.com/postforge/server/internal/logger"
	"github.com/postforge/server/internal/platforms"
	"github.com/postforge/server/postforge/connections"
)

// looks up a user's stored connection for one platform
type ConnectionSource interface {
	FindForPlatform(ctx context.Context, userID, platform string) (*connections.Connection, error)
}

// routes publish requests to the right platform client
type Service struct {
	clients map[string]PlatformClient
}

// creates a publisher with clients for every platform that has posting
// implemented
func NewService() *Service {
	s := &Service{clients: make(map[string]PlatformClient)}

	for _, client := range []PlatformClient{
		NewLinkedInClient(),
		NewFacebookClient(),
	} {
		s.clients[client.Platform()] = client
	}

	return s
}

// used by tests and wiring code to install a replacement client
func (s *Service) Register(client PlatformClient) {
	s.clients[client.Platform()] = client
}

// publishes content to one platform using the user's stored connection
func (s *Service) Publish(ctx context.Context, conn *connections.Connection, platform, content string) *Result {
	def := platforms.Find(platform)
	if def == nil || !def.PostingImplemented {
		return failure(platform, "Posting to "+platform+" is not supported yet")
	}

	client, ok := s.clients[def.Key]
	if !ok {
		return failure(platform, "Posting to "+platform+" is not supported yet")
	}

	if conn == nil || !conn.Valid() {
		return failure(def.Key, "Invalid connection")
	}

	result := client.Publish(ctx, conn, content)

	if !result.Success {
		logger.Warn("publish attempt failed",
			"platform", def.Key,
			"error", result.Error,
		)
	}

	return result
}

// publishes content to every requested platform, returning platform post
// IDs for successes and error messages for failures keyed by platform
func (s *Service) PublishAll(
	ctx context.Context,
	source ConnectionSource,
	userID string,
	platformKeys []string,
	content string,
) (map[string]string, map[string]string) {
	postIDs := make(map[string]string)
	failures := make(map[string]string)

	for _, key := range platformKeys {
		conn, err := source.FindForPlatform(ctx, userID, key)
		if err != nil {
			failures[key] = "platform not connected"
			continue
		}

		result := s.Publish(ctx, conn, key, content)

		if result.Success {
			postIDs[key] = result.PostID
		} else {
			failures[key] = result.Error
		}
	}

	return postIDs, failures
}
