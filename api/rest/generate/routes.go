package generate

import (
	"github.com/gin-gonic/gin"

	"github.com/postforge/server/internal/auth"
)

// registers AI content generation routes
func RegisterRoutes(router *gin.RouterGroup, h *Handlers) {
	generateGroup := router.Group("/generate")
	generateGroup.Use(auth.AuthMiddleware())
	{
		generateGroup.POST("", h.GenerateHandler())
		generateGroup.POST("/suggestions", h.SuggestionsHandler())
		generateGroup.POST("/optimize", h.OptimizeHandler())
		generateGroup.GET("/topics", h.TopicsHandler())
	}
}
