package config

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	SessionSecret string
	Environment   string
	Port          string
	FrontendURL   string
	ServerBaseURL string
}
