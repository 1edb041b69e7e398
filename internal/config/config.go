package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/log"
)

type Config struct {
	// Seed data. Empty means the embedded fixtures.
	FixturesDir string

	// Simulated store latency
	LatencyMin time.Duration
	LatencyMax time.Duration

	// Reports
	TrendMonths   int
	TopCategories int

	// View cache
	CacheSize int
	CacheTTL  time.Duration

	LogLevel string
}

func Load() *Config {
	return &Config{
		FixturesDir: getEnv("FINTRACK_FIXTURES_DIR", ""),

		LatencyMin: getEnvDuration("FINTRACK_LATENCY_MIN", 200*time.Millisecond),
		LatencyMax: getEnvDuration("FINTRACK_LATENCY_MAX", 400*time.Millisecond),

		TrendMonths:   getEnvInt("FINTRACK_TREND_MONTHS", 6),
		TopCategories: getEnvInt("FINTRACK_TOP_CATEGORIES", 5),

		CacheSize: getEnvInt("FINTRACK_CACHE_SIZE", 64),
		CacheTTL:  getEnvDuration("FINTRACK_CACHE_TTL", 30*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns every problem at once.
func (c *Config) Validate() error {
	var errors []string

	if c.FixturesDir != "" {
		if info, err := os.Stat(c.FixturesDir); err != nil {
			errors = append(errors, fmt.Sprintf("fixtures directory '%s' is not readable: %v", c.FixturesDir, err))
		} else if !info.IsDir() {
			errors = append(errors, fmt.Sprintf("fixtures path '%s' is not a directory", c.FixturesDir))
		}
	}

	if c.LatencyMin < 0 {
		errors = append(errors, fmt.Sprintf("invalid latency min %v: cannot be negative", c.LatencyMin))
	}
	if c.LatencyMax < c.LatencyMin {
		errors = append(errors, fmt.Sprintf("invalid latency max %v: must be at least latency min %v", c.LatencyMax, c.LatencyMin))
	} else if c.LatencyMax > 10*time.Second {
		errors = append(errors, fmt.Sprintf("invalid latency max %v: must be at most 10 seconds", c.LatencyMax))
	}

	switch c.TrendMonths {
	case 3, 6, 12:
	default:
		errors = append(errors, fmt.Sprintf("invalid trend months %d: must be 3, 6 or 12", c.TrendMonths))
	}

	if c.TopCategories < 1 {
		errors = append(errors, fmt.Sprintf("invalid top categories %d: must be at least 1", c.TopCategories))
	}

	if c.CacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
	} else if c.CacheSize > 10000 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at most 10000", c.CacheSize))
	}
	if c.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: cannot be negative", c.CacheTTL))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
