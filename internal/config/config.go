package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Grouping bounds
	MinGroupTokens int
	MaxGroupTokens int

	// Page matching
	MinPageConfidence float64

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Job state
	JobTTL time.Duration

	// Output
	ExportDir string

	// Concept tagging
	TaxonomyPath   string
	ConceptTagging bool
}

func Load() Config {
	cfg := Config{
		MinGroupTokens: envInt("MIN_GROUP_TOKENS", 512),
		MaxGroupTokens: envInt("MAX_GROUP_TOKENS", 800),

		MinPageConfidence: envFloat("MIN_PAGE_CONFIDENCE", 0.3),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		ExportDir: envOr("EXPORT_DIR", "exports"),

		TaxonomyPath:   envOr("TAXONOMY_PATH", "taxonomy/taxonomy.yaml"),
		ConceptTagging: envBool("CONCEPT_TAGGING", true),
	}

	if cfg.MinGroupTokens <= 0 {
		cfg.MinGroupTokens = 512
	}
	if cfg.MaxGroupTokens <= 0 {
		cfg.MaxGroupTokens = 800
	}
	if cfg.MinPageConfidence <= 0 {
		cfg.MinPageConfidence = 0.3
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.MinGroupTokens > c.MaxGroupTokens {
		return fmt.Errorf("MIN_GROUP_TOKENS (%d) exceeds MAX_GROUP_TOKENS (%d)", c.MinGroupTokens, c.MaxGroupTokens)
	}
	if c.MinPageConfidence > 1 {
		return fmt.Errorf("MIN_PAGE_CONFIDENCE must be at most 1, got %v", c.MinPageConfidence)
	}
	if c.ExportDir == "" {
		return fmt.Errorf("EXPORT_DIR is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
