package llm

import (
	"os"
	"strconv"
)

// loads generation client configuration from environment variables. A
// missing API key is not an error here: prompt composition must still
// work, and the client fails fast at call time instead.
func LoadConfig() Config {
	config := Config{
		APIKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:  os.Getenv("ANTHROPIC_MODEL"),
	}

	if maxTokensStr := os.Getenv("ANTHROPIC_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			config.MaxTokens = val
		}
	}

	if tempStr := os.Getenv("ANTHROPIC_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			config.Temperature = float32(val)
		}
	}

	return config
}
