package config

import (
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	OpenAIAPIKey string
	SerpAPIKey   string

	Port           string
	ClientURL      string
	ReviewsPerTier int

	RAGDatabasePath string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, falling back to system env vars")
	}

	return &Config{
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		SerpAPIKey:   getEnv("SERPAPI_KEY", ""),

		Port:           getEnv("PORT", "8080"),
		ClientURL:      getEnv("CLIENT_URL", "http://localhost:5173"),
		ReviewsPerTier: getEnvInt("REVIEWS_PER_TIER", 30),

		RAGDatabasePath: getEnv("RAG_DATABASE_PATH", "data/rag_database.json"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
