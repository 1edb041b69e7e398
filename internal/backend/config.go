package backend

import (
	"fmt"

	"fintrack/internal/config"
	"fintrack/internal/store"
)

// Config holds configuration for backend creation
type Config struct {
	// FixturesDir overrides the embedded seed files. Missing files fall
	// back to the embedded ones.
	FixturesDir string

	Latency store.Latency
}

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}
	return Config{
		FixturesDir: appConfig.FixturesDir,
		Latency: store.Latency{
			Min: appConfig.LatencyMin,
			Max: appConfig.LatencyMax,
		},
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if c.Latency.Min < 0 {
		return fmt.Errorf("latency min cannot be negative: %v", c.Latency.Min)
	}
	if c.Latency.Max != 0 && c.Latency.Max < c.Latency.Min {
		return fmt.Errorf("latency max %v is below min %v", c.Latency.Max, c.Latency.Min)
	}
	return nil
}
