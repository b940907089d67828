package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postforge/server/internal/auth"
	"github.com/postforge/server/internal/composer"
	"github.com/postforge/server/internal/errors"
	"github.com/postforge/server/internal/platforms"
	"github.com/postforge/server/internal/tiers"
	"github.com/postforge/server/postforge/users"
)

// GetProfileHandler godoc
// @Summary Get profile
// @Description Get the user's profile with tier features and available platforms
// @Tags profile
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/profile [get]
// @Security BearerAuth
func GetProfileHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, buildResponse(user))
	}
}

// UpdateProfileHandler godoc
// @Summary Update profile
// @Description Update the profile fields used for content generation
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateRequest true "Profile update"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/profile [put]
// @Security BearerAuth
func UpdateProfileHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		current, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		if req.ContentMode != "" {
			if !composer.ModeSupported(req.ContentMode) {
				errors.BadRequest(c, "unknown content mode", nil)
				return
			}

			tier := tiers.DefinitionFor(current.Tier)
			if !tier.ContentModes.Allows(req.ContentMode) {
				errors.Forbidden(c, "content mode not available on your tier")
				return
			}
		}

		update := users.UpdateProfileRequest{
			Name:        req.Name,
			Bio:         req.Bio,
			Mission:     req.Mission,
			Skills:      req.Skills,
			ContentMode: req.ContentMode,
		}

		if update.Name == "" {
			update.Name = current.Name
		}

		if update.ContentMode == "" {
			update.ContentMode = current.ContentMode
		}

		if update.Skills == nil {
			update.Skills = current.Skills
		}

		user, err := userRepo.UpdateProfile(c.Request.Context(), userID, update)
		if err != nil {
			errors.InternalError(c, "failed to update profile", err)
			return
		}

		c.JSON(http.StatusOK, buildResponse(user))
	}
}

func buildResponse(user *users.User) Response {
	tier := tiers.DefinitionFor(user.Tier)

	var modes []string

	for _, mode := range composer.Modes() {
		if tier.ContentModes.Allows(mode.Key) {
			modes = append(modes, mode.Key)
		}
	}

	return Response{
		User: user,
		Tier: TierInfo{
			Key:                  tier.Key,
			Name:                 tier.Name,
			Features:             tier.Features,
			PostsPerHour:         tier.PostsPerHour,
			ScheduledPostsPerDay: tier.ScheduledPostsPerDay,
			GenerationsPerMonth:  tier.Generations.Count,
			UnlimitedGenerations: tier.Generations.Unlimited,
		},
		ContentModes: modes,
		Platforms:    platforms.AvailableToTier(tier),
	}
}
