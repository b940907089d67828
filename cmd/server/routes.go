package main

import (
	"github.com/gin-gonic/gin"

	"github.com/postforge/server/api/rest/auth"
	"github.com/postforge/server/api/rest/connections"
	"github.com/postforge/server/api/rest/generate"
	"github.com/postforge/server/api/rest/health"
	postroutes "github.com/postforge/server/api/rest/posts"
	"github.com/postforge/server/api/rest/profile"
	"github.com/postforge/server/api/rest/templates"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config.FrontendURL))
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		profile.RegisterRoutes(v1, server.userRepo)
		templates.RegisterRoutes(v1, server.templateRepo, server.userRepo)
		connections.RegisterRoutes(v1, server.connRepo, server.userRepo)
		generate.RegisterRoutes(v1, &generate.Handlers{
			Content:      server.services.Content,
			UserRepo:     server.userRepo,
			TemplateRepo: server.templateRepo,
		})
		postroutes.RegisterRoutes(v1, &postroutes.Handlers{
			PostRepo:  server.postRepo,
			UserRepo:  server.userRepo,
			ConnRepo:  server.connRepo,
			Publisher: server.services.Publisher,
			Limiter:   server.services.Limiter,
			Vault:     server.vault,
		})
	}
}
