package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/postforge/server/postforge/connections"
)

const facebookGraphBase = "https://graph.facebook.com/v22.0"

type facebookPostResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// posts to a Facebook page feed through the Graph API. The connection's
// platform user ID is the page ID and its token is a page access token.
type FacebookClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewFacebookClient() *FacebookClient {
	return &FacebookClient{
		baseURL:    facebookGraphBase,
		httpClient: platformHTTPClient,
	}
}

func (c *FacebookClient) Platform() string {
	return "facebook"
}

func (c *FacebookClient) Publish(ctx context.Context, conn *connections.Connection, content string) *Result {
	if conn == nil || !conn.Valid() {
		return failure(c.Platform(), "Invalid connection")
	}

	pageID := conn.PlatformUserID
	if pageID == "" {
		return failure(c.Platform(), "Invalid Facebook page connection")
	}

	form := url.Values{}
	form.Set("message", content)
	form.Set("access_token", conn.AccessToken)

	endpoint := fmt.Sprintf("%s/%s/feed", c.baseURL, pageID)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return failure(c.Platform(), fmt.Sprintf("failed to create request: %v", err))
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return failure(c.Platform(), fmt.Sprintf("Network error: %v", err))
	}

	defer resp.Body.Close() //nolint:errcheck

	var apiResp facebookPostResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return failure(c.Platform(), "Invalid response from Facebook API")
	}

	if resp.StatusCode != http.StatusOK || apiResp.ID == "" {
		if apiResp.Error != nil {
			return failure(c.Platform(), fmt.Sprintf("%s: %s", apiResp.Error.Type, apiResp.Error.Message))
		}

		return failure(c.Platform(), "Failed to post to Facebook")
	}

	return &Result{
		Success:  true,
		Platform: c.Platform(),
		PostID:   apiResp.ID,
		PostURL:  "https://facebook.com/" + apiResp.ID,
	}
}
