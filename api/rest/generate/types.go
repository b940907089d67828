package generate

// GenerateRequest asks for a new post. Prompt is optional; when empty a
// topic is picked from the user's content mode and skills.
type GenerateRequest struct {
	Prompt      string `json:"prompt"`
	Platform    string `json:"platform"`
	ContentMode string `json:"content_mode"`
}

// SuggestionsRequest asks for post ideas around optional free-text context
type SuggestionsRequest struct {
	Context string `json:"context"`
}

// OptimizeRequest asks for an engagement-focused rewrite
type OptimizeRequest struct {
	Content  string `json:"content" binding:"required"`
	Platform string `json:"platform"`
}

// TopicsResponse lists the topic pool the auto-selector draws from
type TopicsResponse struct {
	Topics []string `json:"topics"`
}
