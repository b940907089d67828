package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/postforge/server/postforge/connections"
)

const (
	linkedinAPIBase         = "https://api.linkedin.com/v2"
	linkedinRestliVersion   = "2.0.0"
	linkedinPostURLTemplate = "https://www.linkedin.com/feed/update/%s/"
)

type ugcPostRequest struct {
	Author          string              `json:"author"`
	LifecycleState  string              `json:"lifecycleState"`
	SpecificContent map[string]ugcShare `json:"specificContent"`
	Visibility      map[string]string   `json:"visibility"`
}

type ugcShare struct {
	ShareCommentary    ugcText `json:"shareCommentary"`
	ShareMediaCategory string  `json:"shareMediaCategory"`
}

type ugcText struct {
	Text string `json:"text"`
}

type ugcPostResponse struct {
	ID string `json:"id"`
}

type linkedinErrorResponse struct {
	Message string `json:"message"`
}

// posts member shares through the LinkedIn ugcPosts API
type LinkedInClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewLinkedInClient() *LinkedInClient {
	return &LinkedInClient{
		baseURL:    linkedinAPIBase,
		httpClient: platformHTTPClient,
	}
}

func (c *LinkedInClient) Platform() string {
	return "linkedin"
}

func (c *LinkedInClient) Publish(ctx context.Context, conn *connections.Connection, content string) *Result {
	if conn == nil || !conn.Valid() {
		return failure(c.Platform(), "Invalid connection")
	}

	profileID, _ := conn.Settings["profile_id"].(string)
	if profileID == "" {
		profileID = conn.PlatformUserID
	}

	reqBody := ugcPostRequest{
		Author:         "urn:li:person:" + profileID,
		LifecycleState: "PUBLISHED",
		SpecificContent: map[string]ugcShare{
			"com.linkedin.ugc.ShareContent": {
				ShareCommentary:    ugcText{Text: content},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return failure(c.Platform(), fmt.Sprintf("failed to marshal request: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/ugcPosts", bytes.NewBuffer(jsonData))
	if err != nil {
		return failure(c.Platform(), fmt.Sprintf("failed to create request: %v", err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+conn.AccessToken)
	httpReq.Header.Set("X-Restli-Protocol-Version", linkedinRestliVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return failure(c.Platform(), fmt.Sprintf("Network error: %v", err))
	}

	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var apiResp ugcPostResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
			return failure(c.Platform(), "Invalid response from LinkedIn API")
		}

		return &Result{
			Success:  true,
			Platform: c.Platform(),
			PostID:   apiResp.ID,
			PostURL:  fmt.Sprintf(linkedinPostURLTemplate, apiResp.ID),
		}

	case resp.StatusCode == http.StatusUnauthorized:
		return failure(c.Platform(), "LinkedIn authorization expired. Please reconnect your account.")

	case resp.StatusCode == http.StatusTooManyRequests:
		return failure(c.Platform(), "LinkedIn rate limit exceeded. Please try again later.")

	default:
		var errResp linkedinErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return failure(c.Platform(), errResp.Message)
		}

		return failure(c.Platform(), fmt.Sprintf("LinkedIn API error (%d)", resp.StatusCode))
	}
}
