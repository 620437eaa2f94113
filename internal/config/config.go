package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g., 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// AnalyticsConfig tunes the forecasting and analysis engines
type AnalyticsConfig struct {
	Trials            int     `mapstructure:"trials"`             // Monte Carlo trials per forecast
	HorizonWeeks      int     `mapstructure:"horizon_weeks"`      // Hard cap on simulated weeks
	HistoryWeeks      int     `mapstructure:"history_weeks"`      // Trailing weeks of velocity history
	DefaultConfidence float64 `mapstructure:"default_confidence"` // Percentile used for the estimated date
	Workers           int     `mapstructure:"workers"`            // Simulation worker goroutines
	Seed              int64   `mapstructure:"seed"`               // Fixed RNG seed; 0 means time-based
	Windows           []int   `mapstructure:"windows"`            // Moving-average window sizes in days
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Analytics.Validate(); err != nil {
		return fmt.Errorf("analytics config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates server configuration
func (c *ServerConfig) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}

	return nil
}

// Validate validates analytics configuration
func (c *AnalyticsConfig) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("analytics.trials must be at least 1")
	}

	if c.HorizonWeeks < 1 {
		return fmt.Errorf("analytics.horizon_weeks must be at least 1")
	}

	if c.HistoryWeeks < 1 {
		return fmt.Errorf("analytics.history_weeks must be at least 1")
	}

	if c.DefaultConfidence <= 0 || c.DefaultConfidence >= 1 {
		return fmt.Errorf("analytics.default_confidence must be between 0 and 1 exclusive")
	}

	if c.Workers < 1 {
		return fmt.Errorf("analytics.workers must be at least 1")
	}

	if len(c.Windows) == 0 {
		return fmt.Errorf("analytics.windows is required")
	}
	for _, w := range c.Windows {
		if w < 1 {
			return fmt.Errorf("analytics.windows entries must be positive, got %d", w)
		}
	}

	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Logging.Level == "debug" && c.Logging.Format == "console"
}
