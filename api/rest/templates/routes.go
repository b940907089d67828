package templates

import (
	"github.com/gin-gonic/gin"

	"github.com/postforge/server/internal/auth"
	"github.com/postforge/server/postforge/templates"
	"github.com/postforge/server/postforge/users"
)

// registers prompt template routes
func RegisterRoutes(router *gin.RouterGroup, templateRepo *templates.Repository, userRepo *users.Repository) {
	templatesGroup := router.Group("/templates")
	templatesGroup.Use(auth.AuthMiddleware())
	{
		templatesGroup.GET("", ListTemplatesHandler(templateRepo, userRepo))
		templatesGroup.POST("", CreateTemplateHandler(templateRepo, userRepo))
		templatesGroup.PUT("/:id", UpdateTemplateHandler(templateRepo, userRepo))
		templatesGroup.DELETE("/:id", DeleteTemplateHandler(templateRepo, userRepo))
	}
}
