package connections

import (
	"github.com/gin-gonic/gin"

	"github.com/postforge/server/internal/auth"
	"github.com/postforge/server/postforge/connections"
	"github.com/postforge/server/postforge/users"
)

// registers platform connection routes
func RegisterRoutes(router *gin.RouterGroup, connRepo *connections.Repository, userRepo *users.Repository) {
	router.GET("/platforms", auth.AuthMiddleware(), ListPlatformsHandler(userRepo))

	connectionsGroup := router.Group("/connections")
	connectionsGroup.Use(auth.AuthMiddleware())
	{
		connectionsGroup.GET("", ListConnectionsHandler(connRepo))
		connectionsGroup.GET("/:platform", BeginConnectHandler())
		connectionsGroup.GET("/:platform/callback", ConnectCallbackHandler(connRepo))
		connectionsGroup.DELETE("/:platform", DisconnectHandler(connRepo))
	}
}
