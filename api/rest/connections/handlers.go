package connections

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"

	"github.com/postforge/server/internal/auth"
	"github.com/postforge/server/internal/errors"
	"github.com/postforge/server/internal/platforms"
	"github.com/postforge/server/internal/tiers"
	"github.com/postforge/server/postforge/connections"
	"github.com/postforge/server/postforge/users"
)

// ListPlatformsHandler godoc
// @Summary List platforms
// @Description List all registered platforms and the ones available to the user's tier
// @Tags connections
// @Produce json
// @Success 200 {object} PlatformsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/platforms [get]
// @Security BearerAuth
func ListPlatformsHandler(userRepo *users.Repository) gin.HandlerFunc {
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

		tier := tiers.DefinitionFor(user.Tier)
		available := []string{}

		for _, def := range platforms.AvailableToTier(tier) {
			available = append(available, def.Key)
		}

		c.JSON(http.StatusOK, PlatformsResponse{
			Platforms: platforms.All(),
			Available: available,
		})
	}
}

// ListConnectionsHandler godoc
// @Summary List platform connections
// @Tags connections
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/connections [get]
// @Security BearerAuth
func ListConnectionsHandler(connRepo *connections.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		list, err := connRepo.ListForUser(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list connections", err)
			return
		}

		views := make([]ConnectionView, 0, len(list))

		for _, conn := range list {
			views = append(views, ConnectionView{Connection: conn, Valid: conn.Valid()})
		}

		c.JSON(http.StatusOK, ListResponse{Connections: views})
	}
}

// BeginConnectHandler godoc
// @Summary Connect a platform
// @Description Begin the OAuth flow linking a posting platform to the account
// @Tags connections
// @Param platform path string true "Platform" Enums(linkedin, facebook)
// @Success 302 {string} string "Redirect to platform OAuth"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/connections/{platform} [get]
// @Security BearerAuth
func BeginConnectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		platform := c.Param("platform")

		if !isConnectablePlatform(platform) {
			errors.BadRequest(c, "platform does not support connections yet", nil)
			return
		}

		q := c.Request.URL.Query()
		q.Add("provider", platform)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// ConnectCallbackHandler godoc
// @Summary Platform OAuth callback
// @Description Completes the platform OAuth flow and stores the connection
// @Tags connections
// @Produce json
// @Param platform path string true "Platform" Enums(linkedin, facebook)
// @Success 200 {object} ConnectionView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/connections/{platform}/callback [get]
// @Security BearerAuth
func ConnectCallbackHandler(connRepo *connections.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		platform := c.Param("platform")

		if !isConnectablePlatform(platform) {
			errors.BadRequest(c, "platform does not support connections yet", nil)
			return
		}

		q := c.Request.URL.Query()
		q.Add("provider", platform)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "platform authorization failed", err)
			return
		}

		req := connections.UpsertConnectionRequest{
			Platform:         platform,
			AccessToken:      gothUser.AccessToken,
			RefreshToken:     gothUser.RefreshToken,
			PlatformUserID:   gothUser.UserID,
			PlatformUsername: gothUser.Name,
			Settings: map[string]any{
				"name":       gothUser.Name,
				"profile_id": gothUser.UserID,
			},
		}

		if !gothUser.ExpiresAt.IsZero() {
			expiresAt := gothUser.ExpiresAt
			req.TokenExpiresAt = &expiresAt
		}

		conn, err := connRepo.Upsert(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to store connection", err)
			return
		}

		c.JSON(http.StatusOK, ConnectionView{Connection: *conn, Valid: conn.Valid()})
	}
}

// DisconnectHandler godoc
// @Summary Disconnect a platform
// @Description Deactivates the platform connection; tokens remain stored until deleted
// @Tags connections
// @Produce json
// @Param platform path string true "Platform"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/connections/{platform} [delete]
// @Security BearerAuth
func DisconnectHandler(connRepo *connections.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		platform := c.Param("platform")

		if err := connRepo.Deactivate(c.Request.Context(), userID, platform); err != nil {
			errors.NotFound(c, "connection")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "platform disconnected"})
	}
}

func isConnectablePlatform(platform string) bool {
	connectable := []string{}

	for _, def := range platforms.All() {
		if def.OAuthImplemented {
			connectable = append(connectable, def.Key)
		}
	}

	return slices.Contains(connectable, platform)
}
