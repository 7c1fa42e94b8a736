package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-3.5-turbo"
)

type Config struct {
	// Server
	Port string
	Env  string

	// OpenAI
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Request handling. MaxBodyBytes <= 0 means the body is read without a cap.
	MaxBodyBytes int64

	// Prompts override file (YAML). Empty uses the embedded prompts.
	PromptsFile string

	// Frontend
	FrontendURL string
}

// Load builds the configuration once at process start. A missing API key is
// not fatal here: the chat endpoint reports it per request.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Env:           getEnvOrDefault("ENV", "development"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnvOrDefault("OPENAI_BASE_URL", DefaultOpenAIBaseURL),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", DefaultOpenAIModel),
		MaxBodyBytes:  int64(getEnvAsIntOrDefault("MAX_BODY_BYTES", 0)),
		PromptsFile:   getEnvOrDefault("PROMPTS_FILE", ""),
		FrontendURL:   getEnvOrDefault("FRONTEND_URL", "*"),
	}

	return cfg
}

// HasCredential reports whether an upstream API key is configured.
func (c *Config) HasCredential() bool {
	return c != nil && c.OpenAIAPIKey != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
