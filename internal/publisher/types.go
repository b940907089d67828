package publisher

import (
	"context"
	"net/http"
	"time"

	"github.com/postforge/server/postforge/connections"
)

// Result is the uniform outcome of a publish attempt. Success carries
// the platform's post ID and a public URL; failure carries a
// user-presentable error.
type Result struct {
	Success  bool   `json:"success"`
	Platform string `json:"platform"`
	PostID   string `json:"post_id,omitempty"`
	PostURL  string `json:"post_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// publishes content to one social platform using a stored connection
type PlatformClient interface {
	Publish(ctx context.Context, conn *connections.Connection, content string) *Result
	Platform() string
}

// shared HTTP client for platform API calls. One attempt per call, no
// retries; the timeout bounds the whole attempt.
var platformHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

func failure(platform, message string) *Result {
	return &Result{
		Success:  false,
		Platform: platform,
		Error:    message,
	}
}
