package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/postforge/server/internal/config"
	"github.com/postforge/server/postforge/connections"
	"github.com/postforge/server/postforge/posts"
	"github.com/postforge/server/postforge/templates"
	"github.com/postforge/server/postforge/users"
)

const (
	// how often the scheduler checks for due posts
	schedulerCheckInterval = 1 * time.Minute
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for managed postgres pooler compatibility
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// pgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	templateRepo := templates.NewRepository(db)
	postRepo := posts.NewRepository(db)
	connRepo := connections.NewRepository(db)

	services := InitializeServices()

	// scheduled content lives in memory only, never in the database
	vault := posts.NewContentVault()

	scheduler := posts.NewScheduler(
		postRepo,
		schedulerCheckInterval,
		ScheduledPublisher(vault, connRepo, postRepo, services.Publisher),
	)

	router := gin.Default()

	server := &Server{
		db:           db,
		config:       cfg,
		userRepo:     userRepo,
		templateRepo: templateRepo,
		postRepo:     postRepo,
		connRepo:     connRepo,
		services:     services,
		vault:        vault,
		scheduler:    scheduler,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
