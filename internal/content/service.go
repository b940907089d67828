package content

import (
	"context"

	"github.com/postforge/server/internal/composer"
	"github.com/postforge/server/internal/llm"
	"github.com/postforge/server/internal/logger"
)

// Service submits composed prompts to the text-generation provider and
// normalizes every outcome into a Result. Nothing here is allowed to
// abort the caller's request: every failure path yields a fallback value.
type Service struct {
	generator llm.TextGenerator
}

func New(generator llm.TextGenerator) *Service {
	return &Service{generator: generator}
}

// Generate composes the prompt pair for the request and calls the
// provider once. A missing credential, provider error, or transport
// failure all come back as a failure Result with fallback content.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) *Result {
	contentMode := req.ContentMode
	if contentMode == "" {
		contentMode = req.Profile.ContentMode
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = composer.RandomTopic(req.Profile)
	}

	composed := composer.GenerationPrompt(req.Profile, prompt, contentMode, req.Platform)

	return s.call(ctx, composed, prompt, req.Platform)
}

// Suggestions asks for three distinct post ideas grounded in the user's
// profile and free-text context
func (s *Service) Suggestions(ctx context.Context, profile composer.Profile, promptContext string) *Result {
	composed := composer.SuggestionPrompt(profile, promptContext)
	return s.call(ctx, composed, promptContext, "")
}

// Optimize rewrites existing content for engagement. On failure the
// fallback is the original content unchanged.
func (s *Service) Optimize(ctx context.Context, existing, platform string) *Result {
	composed := composer.OptimizationPrompt(existing, platform)

	result := s.call(ctx, composed, existing, platform)
	if !result.Success {
		result.FallbackContent = existing
	}

	return result
}

func (s *Service) call(ctx context.Context, prompt composer.Prompt, original, platform string) *Result {
	resp, err := s.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: prompt.System,
		Messages:     []llm.Message{{Role: "user", Content: prompt.User}},
	})

	if err != nil {
		logger.Warn("content generation failed",
			"error", err,
			"model", s.generator.Model(),
		)

		return &Result{
			Success:         false,
			Error:           err.Error(),
			FallbackContent: fallbackContent(original, platform),
		}
	}

	return &Result{
		Success:    true,
		Content:    resp.Text,
		TokensUsed: resp.Usage.OutputTokens,
		Provider:   string(llm.ProviderAnthropic),
		Model:      s.generator.Model(),
	}
}
