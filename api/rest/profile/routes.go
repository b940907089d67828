package profile

import (
	"github.com/gin-gonic/gin"

	"github.com/postforge/server/internal/auth"
	"github.com/postforge/server/postforge/users"
)

// registers profile routes
func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository) {
	profileGroup := router.Group("/profile")
	profileGroup.Use(auth.AuthMiddleware())
	{
		profileGroup.GET("", GetProfileHandler(userRepo))
		profileGroup.PUT("", UpdateProfileHandler(userRepo))
	}
}
