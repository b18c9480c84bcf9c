package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage. DBDriver selects the backend: "sqlite" (local file) or
	// "postgres" (remote hosted database).
	DBDriver    string
	DBPath      string // sqlite file path
	DatabaseURL string // postgres connection string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// AI answer suggestions
	LLMURL    string // OpenAI-compatible endpoint, e.g. "http://localhost:1234/v1"
	LLMModel  string // model name, e.g. "qwen3-8b"
	LLMAPIKey string // empty for local servers that skip auth
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	cfg := &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBDriver:        getenvDefault("DB_DRIVER", "sqlite"),
		DBPath:          getenvDefault("DB_PATH", "flashlearn.db"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       mustGetenv("JWT_SECRET"),
		TokenTTL:        getDurationDefault("TOKEN_TTL", 24*time.Hour),
		LLMURL:          getenvDefault("LLM_URL", "http://localhost:1234/v1"),
		LLMModel:        getenvDefault("LLM_MODEL", "qwen3-8b"),
		LLMAPIKey:       os.Getenv("LLM_API_KEY"),
	}

	if cfg.DBDriver == "postgres" && cfg.DatabaseURL == "" {
		log.Fatal("config: DB_DRIVER=postgres requires DATABASE_URL")
	}

	return cfg
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
