package posts

import (
	"github.com/gin-gonic/gin"

	"github.com/postforge/server/internal/auth"
)

// registers post routes
func RegisterRoutes(router *gin.RouterGroup, h *Handlers) {
	postsGroup := router.Group("/posts")
	postsGroup.Use(auth.AuthMiddleware())
	{
		postsGroup.GET("", h.ListPostsHandler())
		postsGroup.POST("", h.CreatePostHandler())
		postsGroup.GET("/:id", h.GetPostHandler())
		postsGroup.POST("/:id/publish", h.PublishPostHandler())
		postsGroup.DELETE("/:id", h.DeletePostHandler())
	}
}
