package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Ollama  OllamaConfig
	Session SessionConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	URL string // Optional: empty means in-memory repositories
}

// OllamaConfig holds the generation-service configuration
type OllamaConfig struct {
	BaseURL string
	Model   string
}

// SessionConfig holds login-session configuration
type SessionConfig struct {
	TTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr: getEnvOrDefault("ADDR", "127.0.0.1:5050"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Ollama: OllamaConfig{
			BaseURL: getEnvOrDefault("OLLAMA_URL", "http://localhost:4242"),
			Model:   getEnvOrDefault("OLLAMA_MODEL", "mistral"),
		},
		Session: SessionConfig{
			TTL: time.Duration(getEnvAsIntOrDefault("SESSION_TTL_HOURS", 24)) * time.Hour,
		},
	}

	if cfg.Ollama.BaseURL == "" {
		return nil, fmt.Errorf("OLLAMA_URL cannot be empty")
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
