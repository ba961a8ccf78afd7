// ABOUTME: Centralized configuration for the gallery guide
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the gallery guide system
type Config struct {
	// Catalog and storage paths
	DataFile string
	CacheDir string
	DBPath   string

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Retrieval settings
	VectorDimension     int
	SimilarityThreshold float64
	TopK                int

	// Analytics settings
	RetentionDays int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DataFile:            getEnv("GALLERY_DATA_FILE", "data/artworks.json"),
		CacheDir:            getEnv("GALLERY_CACHE_DIR", "data/cache"),
		DBPath:              getEnv("GALLERY_DB_PATH", "data/analytics.db"),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		ChatModel:           getEnv("GALLERY_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:      getEnv("GALLERY_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:             getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:          getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:          getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		VectorDimension:     getEnvInt("VECTOR_DIMENSION", 384),
		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.3),
		TopK:                getEnvInt("TOP_K", 3),
		RetentionDays:       getEnvInt("RETENTION_DAYS", 90),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be 0-1, got %f", c.SimilarityThreshold)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("TOP_K must be positive, got %d", c.TopK)
	}
	if c.VectorDimension <= 0 {
		return fmt.Errorf("VECTOR_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.RetentionDays <= 0 {
		return fmt.Errorf("RETENTION_DAYS must be positive, got %d", c.RetentionDays)
	}
	return nil
}

// HasOpenAI reports whether an API key is configured. Without one the
// guide runs in degraded mode: no semantic search, template answers only.
func (c *Config) HasOpenAI() bool {
	return c.OpenAIKey != ""
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
