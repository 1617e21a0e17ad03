package config

import (
	"time"

	"github.com/turtacn/ClaimScout/internal/domain/similarity"
	"github.com/turtacn/ClaimScout/internal/infrastructure/ai/openai"
)

const (
	DefaultServerPort      = 8080
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultMaxBodySize     = 10 * 1024 * 1024
	DefaultShutdownTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsPath = "/metrics"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Explicitly configured values are left unchanged. Must run after
// unmarshalling and before Validate.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}
	if len(cfg.Log.ErrorOutputPaths) == 0 {
		cfg.Log.ErrorOutputPaths = []string{"stderr"}
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Accept", "Content-Type", "X-Request-ID"}
	}
	if cfg.CORS.MaxAge == 0 {
		cfg.CORS.MaxAge = 300
	}

	if cfg.Search.TopK == 0 {
		cfg.Search.TopK = similarity.DefaultTopK
	}

	def := openai.DefaultConfig()
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = def.BaseURL
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = def.Model
	}
	if cfg.OpenAI.Temperature == 0 {
		cfg.OpenAI.Temperature = def.Temperature
	}
	if cfg.OpenAI.Timeout == 0 {
		cfg.OpenAI.Timeout = def.Timeout
	}
	if cfg.OpenAI.MaxRetries == 0 {
		cfg.OpenAI.MaxRetries = def.MaxRetries
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
}
