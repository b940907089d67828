package content

import "github.com/postforge/server/internal/composer"

// contains all inputs for one generation call. Prompt is optional; when
// empty a topic is auto-selected from the user's content mode and skills.
type GenerateRequest struct {
	Profile     composer.Profile
	Prompt      string
	Platform    string
	ContentMode string
}

// Result is the tagged outcome of a generation attempt. Exactly one of
// the two shapes is populated: success carries the generated text and
// token usage; failure carries the error plus locally synthesized
// fallback text so callers always have something usable to show.
type Result struct {
	Success         bool   `json:"success"`
	Content         string `json:"content,omitempty"`
	TokensUsed      int    `json:"tokens_used,omitempty"`
	Provider        string `json:"provider,omitempty"`
	Model           string `json:"model,omitempty"`
	Error           string `json:"error,omitempty"`
	FallbackContent string `json:"fallback_content,omitempty"`
}
