package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/postforge/server/internal/config"
	"github.com/postforge/server/internal/content"
	"github.com/postforge/server/internal/publisher"
	"github.com/postforge/server/internal/ratelimit"
	"github.com/postforge/server/postforge/connections"
	"github.com/postforge/server/postforge/posts"
	"github.com/postforge/server/postforge/templates"
	"github.com/postforge/server/postforge/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	config       *config.Config
	userRepo     *users.Repository
	templateRepo *templates.Repository
	postRepo     *posts.Repository
	connRepo     *connections.Repository
	services     *Services
	vault        *posts.ContentVault
	scheduler    *posts.Scheduler
	router       *gin.Engine
}

// holds the service clients shared across handlers
type Services struct {
	Content   *content.Service
	Publisher *publisher.Service
	Limiter   *ratelimit.PostLimiter
}
