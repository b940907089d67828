package templates

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postforge/server/internal/auth"
	"github.com/postforge/server/internal/composer"
	"github.com/postforge/server/internal/errors"
	"github.com/postforge/server/internal/tiers"
	"github.com/postforge/server/postforge/templates"
	"github.com/postforge/server/postforge/users"
)

// ensures the user's tier includes prompt editing before any template
// operation runs; free tier templates would never be consulted anyway
func requireEditPrompts(c *gin.Context, userRepo *users.Repository) (string, bool) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return "", false
	}

	user, err := userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		errors.NotFound(c, "user")
		return "", false
	}

	if !tiers.HasFeature(user.Tier, tiers.FeatureEditPrompts) {
		errors.Forbidden(c, "prompt templates require a pro or ultimate subscription")
		return "", false
	}

	return userID, true
}

// CreateTemplateHandler godoc
// @Summary Create prompt template
// @Description Create a custom prompt template for a content mode
// @Tags templates
// @Accept json
// @Produce json
// @Param request body templates.CreateTemplateRequest true "Template"
// @Success 201 {object} templates.Template
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/templates [post]
// @Security BearerAuth
func CreateTemplateHandler(templateRepo *templates.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireEditPrompts(c, userRepo)
		if !ok {
			return
		}

		var req templates.CreateTemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !composer.ModeSupported(req.ContentMode) {
			errors.BadRequest(c, "unknown content mode", nil)
			return
		}

		template, err := templateRepo.Create(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to create template", err)
			return
		}

		c.JSON(http.StatusCreated, template)
	}
}

// ListTemplatesHandler godoc
// @Summary List prompt templates
// @Tags templates
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/templates [get]
// @Security BearerAuth
func ListTemplatesHandler(templateRepo *templates.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireEditPrompts(c, userRepo)
		if !ok {
			return
		}

		list, err := templateRepo.List(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list templates", err)
			return
		}

		if list == nil {
			list = []templates.Template{}
		}

		c.JSON(http.StatusOK, ListResponse{Templates: list})
	}
}

// UpdateTemplateHandler godoc
// @Summary Update prompt template
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body templates.UpdateTemplateRequest true "Template update"
// @Success 200 {object} templates.Template
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/templates/{id} [put]
// @Security BearerAuth
func UpdateTemplateHandler(templateRepo *templates.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireEditPrompts(c, userRepo)
		if !ok {
			return
		}

		templateID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req templates.UpdateTemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		template, err := templateRepo.Update(c.Request.Context(), templateID, userID, req)
		if err != nil {
			errors.NotFound(c, "template")
			return
		}

		c.JSON(http.StatusOK, template)
	}
}

// DeleteTemplateHandler godoc
// @Summary Delete prompt template
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/templates/{id} [delete]
// @Security BearerAuth
func DeleteTemplateHandler(templateRepo *templates.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireEditPrompts(c, userRepo)
		if !ok {
			return
		}

		templateID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := templateRepo.Delete(c.Request.Context(), templateID, userID); err != nil {
			errors.NotFound(c, "template")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "template deleted"})
	}
}
