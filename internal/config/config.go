// Package config defines the ClaimScout configuration structures and the
// loading logic around them. No I/O lives in config.go, only data types and
// validation.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/ClaimScout/internal/infrastructure/ai/openai"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/logging"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// CORSConfig holds cross-origin settings for the browser frontend.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAge         int      `mapstructure:"max_age"`
}

// SearchConfig holds similarity-search tunables.
type SearchConfig struct {
	// TopK is the maximum number of results a search returns.
	TopK int `mapstructure:"top_k"`
}

// PDFConfig controls document upload extraction. Parsing is off by default;
// the upload endpoint then answers every document with an extraction error
// telling the caller to paste text instead.
type PDFConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Config is the root configuration for the ClaimScout service.
type Config struct {
	Server  ServerConfig      `mapstructure:"server"`
	Log     logging.LogConfig `mapstructure:"log"`
	CORS    CORSConfig        `mapstructure:"cors"`
	Search  SearchConfig      `mapstructure:"search"`
	OpenAI  openai.Config     `mapstructure:"openai"`
	PDF     PDFConfig         `mapstructure:"pdf"`
	Metrics MetricsConfig     `mapstructure:"metrics"`
}

// Validate performs semantic validation of the fully-populated Config. Any
// error is fatal; callers must refuse to start with an invalid config.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	if c.Server.MaxBodySize < 1 {
		return fmt.Errorf("config: server.max_body_size must be positive, got %d", c.Server.MaxBodySize)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Search.TopK < 1 {
		return fmt.Errorf("config: search.top_k must be >= 1, got %d", c.Search.TopK)
	}

	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("config: openai.temperature %v is out of range [0, 2]", c.OpenAI.Temperature)
	}

	return nil
}
