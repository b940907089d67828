package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")
	frontendURL := os.Getenv("FRONTEND_URL")
	serverBaseURL := os.Getenv("SERVER_BASE_URL")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	if serverBaseURL == "" {
		serverBaseURL = "http://localhost:" + port
	}

	return &Config{
		DatabaseURL:   databaseURL,
		JWTSecret:     jwtSecret,
		SessionSecret: sessionSecret,
		Environment:   environment,
		Port:          port,
		FrontendURL:   frontendURL,
		ServerBaseURL: serverBaseURL,
	}, nil
}
