package generate

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postforge/server/internal/auth"
	"github.com/postforge/server/internal/composer"
	"github.com/postforge/server/internal/content"
	"github.com/postforge/server/internal/errors"
	"github.com/postforge/server/internal/platforms"
	"github.com/postforge/server/internal/tiers"
	"github.com/postforge/server/postforge/templates"
	"github.com/postforge/server/postforge/users"
)

// Handlers carries the collaborators for AI content endpoints
type Handlers struct {
	Content      *content.Service
	UserRepo     *users.Repository
	TemplateRepo *templates.Repository
}

// loads the user and assembles the profile snapshot the prompt composer
// consumes, including any active custom templates
func (h *Handlers) loadProfile(c *gin.Context) (composer.Profile, bool) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return composer.Profile{}, false
	}

	user, err := h.UserRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		errors.NotFound(c, "user")
		return composer.Profile{}, false
	}

	if !tiers.HasFeature(user.Tier, tiers.FeatureUseAI) {
		errors.Forbidden(c, "AI content generation is not available on your tier")
		return composer.Profile{}, false
	}

	profile := composer.Profile{
		Name:        user.Name,
		Bio:         user.Bio,
		Mission:     user.Mission,
		Skills:      user.Skills,
		ContentMode: user.ContentMode,
		Tier:        user.Tier,
		Templates:   h.loadTemplates(c.Request.Context(), userID),
	}

	return profile, true
}

func (h *Handlers) loadTemplates(ctx context.Context, userID string) []composer.CustomTemplate {
	list, err := h.TemplateRepo.List(ctx, userID)
	if err != nil {
		// composing must still work without customizations
		return nil
	}

	result := make([]composer.CustomTemplate, 0, len(list))

	for _, t := range list {
		result = append(result, composer.CustomTemplate{
			ContentMode: t.ContentMode,
			Text:        t.PromptText,
			Active:      t.Active,
		})
	}

	return result
}

// GenerateHandler godoc
// @Summary Generate post content
// @Description Generate a post from the user's profile; falls back to placeholder text when the AI provider is unavailable
// @Tags generate
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Generation request"
// @Success 200 {object} content.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/generate [post]
// @Security BearerAuth
func (h *Handlers) GenerateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.Platform != "" && !platforms.Supported(req.Platform) {
			errors.BadRequest(c, "unknown platform: "+req.Platform, nil)
			return
		}

		profile, ok := h.loadProfile(c)
		if !ok {
			return
		}

		if req.ContentMode != "" {
			tier := tiers.DefinitionFor(profile.Tier)
			if !tier.ContentModes.Allows(req.ContentMode) {
				errors.Forbidden(c, "content mode not available on your tier")
				return
			}
		}

		result := h.Content.Generate(c.Request.Context(), content.GenerateRequest{
			Profile:     profile,
			Prompt:      req.Prompt,
			Platform:    req.Platform,
			ContentMode: req.ContentMode,
		})

		c.JSON(http.StatusOK, result)
	}
}

// SuggestionsHandler godoc
// @Summary Suggest post ideas
// @Tags generate
// @Accept json
// @Produce json
// @Param request body SuggestionsRequest true "Suggestion request"
// @Success 200 {object} content.Result
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/generate/suggestions [post]
// @Security BearerAuth
func (h *Handlers) SuggestionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SuggestionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		profile, ok := h.loadProfile(c)
		if !ok {
			return
		}

		result := h.Content.Suggestions(c.Request.Context(), profile, req.Context)

		c.JSON(http.StatusOK, result)
	}
}

// OptimizeHandler godoc
// @Summary Optimize existing content
// @Description Rewrite a post for engagement; on failure the original content is returned unchanged
// @Tags generate
// @Accept json
// @Produce json
// @Param request body OptimizeRequest true "Optimization request"
// @Success 200 {object} content.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/generate/optimize [post]
// @Security BearerAuth
func (h *Handlers) OptimizeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OptimizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.Platform != "" && !platforms.Supported(req.Platform) {
			errors.BadRequest(c, "unknown platform: "+req.Platform, nil)
			return
		}

		_, ok := h.loadProfile(c)
		if !ok {
			return
		}

		result := h.Content.Optimize(c.Request.Context(), req.Content, req.Platform)

		c.JSON(http.StatusOK, result)
	}
}

// TopicsHandler godoc
// @Summary List auto-selectable topics
// @Description List the topic pool derived from the user's content mode and skills
// @Tags generate
// @Produce json
// @Success 200 {object} TopicsResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/generate/topics [get]
// @Security BearerAuth
func (h *Handlers) TopicsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := h.loadProfile(c)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, TopicsResponse{Topics: composer.TopicPool(profile)})
	}
}
