package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postforge/server/internal/composer"
	"github.com/postforge/server/internal/llm"
)

// scripted generator for exercising both result shapes
type mockGenerator struct {
	response *llm.TextGenerationResponse
	err      error

	lastRequest llm.TextGenerationRequest
	calls       int
}

func (m *mockGenerator) GenerateText(_ context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	m.lastRequest = req
	m.calls++

	if m.err != nil {
		return nil, m.err
	}

	return m.response, nil
}

func (m *mockGenerator) Model() string {
	return "claude-3-haiku-20240307"
}

func testProfile() composer.Profile {
	return composer.Profile{
		Name:        "Jordan",
		Bio:         "Marketing consultant",
		Skills:      []string{"SEO", "branding"},
		ContentMode: composer.ModeBusiness,
		Tier:        "free",
	}
}

func TestGenerate_Success(t *testing.T) {
	gen := &mockGenerator{
		response: &llm.TextGenerationResponse{
			Text:  "Five SEO lessons from this quarter...",
			Usage: llm.Usage{InputTokens: 200, OutputTokens: 85},
		},
	}

	service := New(gen)

	result := service.Generate(context.Background(), GenerateRequest{
		Profile:  testProfile(),
		Prompt:   "Write about SEO trends",
		Platform: "linkedin",
	})

	require.True(t, result.Success)
	assert.Equal(t, "Five SEO lessons from this quarter...", result.Content)
	assert.Equal(t, 85, result.TokensUsed)
	assert.Equal(t, "anthropic", result.Provider)
	assert.Equal(t, "claude-3-haiku-20240307", result.Model)
	assert.Empty(t, result.Error)
	assert.Empty(t, result.FallbackContent)

	require.Len(t, gen.lastRequest.Messages, 1)
	assert.Contains(t, gen.lastRequest.Messages[0].Content, "Write about SEO trends")
	assert.Contains(t, gen.lastRequest.SystemPrompt, "professional business content creator")
}

func TestGenerate_MissingCredentialFallsBack(t *testing.T) {
	gen := &mockGenerator{err: llm.ErrAPIKeyMissing}
	service := New(gen)

	prompt := strings.Repeat("a", 150)

	result := service.Generate(context.Background(), GenerateRequest{
		Profile:  testProfile(),
		Prompt:   prompt,
		Platform: "linkedin",
	})

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "not configured")
	assert.Empty(t, result.Content)

	// fallback keeps only the first 100 characters of the prompt
	expected := "Here's your post for linkedin: " + strings.Repeat("a", 100) +
		"... [Please customize this message to match your voice and add relevant details]"
	assert.Equal(t, expected, result.FallbackContent)
}

func TestGenerate_FallbackWithoutPlatform(t *testing.T) {
	gen := &mockGenerator{err: llm.ErrAPIKeyMissing}
	service := New(gen)

	result := service.Generate(context.Background(), GenerateRequest{
		Profile: testProfile(),
		Prompt:  "short prompt",
	})

	require.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.FallbackContent, "Here's your post: short prompt"))
}

func TestGenerate_EmptyPromptPicksTopic(t *testing.T) {
	gen := &mockGenerator{
		response: &llm.TextGenerationResponse{Text: "ok"},
	}
	service := New(gen)

	profile := testProfile()
	result := service.Generate(context.Background(), GenerateRequest{Profile: profile})

	require.True(t, result.Success)

	// the auto-selected topic must come from the profile's topic pool
	pool := composer.TopicPool(profile)
	found := false

	for _, topic := range pool {
		if strings.Contains(gen.lastRequest.Messages[0].Content, topic) {
			found = true
			break
		}
	}

	assert.True(t, found, "user message should contain a topic from the pool")
}

func TestGenerate_ContentModeOverridesProfile(t *testing.T) {
	gen := &mockGenerator{
		response: &llm.TextGenerationResponse{Text: "ok"},
	}
	service := New(gen)

	service.Generate(context.Background(), GenerateRequest{
		Profile:     testProfile(),
		Prompt:      "anything",
		ContentMode: composer.ModePersonal,
	})

	assert.Contains(t, gen.lastRequest.SystemPrompt, "authentic personal social media content")
}

func TestSuggestions_Success(t *testing.T) {
	gen := &mockGenerator{
		response: &llm.TextGenerationResponse{Text: "1. idea\n2. idea\n3. idea"},
	}
	service := New(gen)

	result := service.Suggestions(context.Background(), testProfile(), "product launches")

	require.True(t, result.Success)
	assert.Contains(t, gen.lastRequest.Messages[0].Content, "product launches")
}

func TestOptimize_FailureReturnsOriginalContent(t *testing.T) {
	gen := &mockGenerator{err: llm.ErrAPIKeyMissing}
	service := New(gen)

	original := "My existing post about marketing."
	result := service.Optimize(context.Background(), original, "facebook")

	require.False(t, result.Success)
	assert.Equal(t, original, result.FallbackContent, "optimization failure must not lose the user's content")
}

func TestOptimize_Success(t *testing.T) {
	gen := &mockGenerator{
		response: &llm.TextGenerationResponse{Text: "Improved post.", Usage: llm.Usage{OutputTokens: 12}},
	}
	service := New(gen)

	result := service.Optimize(context.Background(), "original", "linkedin")

	require.True(t, result.Success)
	assert.Equal(t, "Improved post.", result.Content)
	assert.Equal(t, 12, result.TokensUsed)
}
